package med

import (
	"context"
	"runtime"

	"github.com/katalvlaran/icurves/core"
	"github.com/katalvlaran/icurves/dfs"
	"github.com/katalvlaran/icurves/route"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Defaults for Options.
const (
	DefaultRingSize   = 16
	DefaultRingMargin = 1000.0
)

// CycleSource enumerates the simple cycles of g, shortest first, calling
// visit until it returns false. prune may cut partial paths early.
type CycleSource func(ctx context.Context, g *core.Graph, prune dfs.PruneFunc, visit func(cycle []string) bool) error

// DFSCycles is the default CycleSource: dfs.Cycles with one report per
// vertex set.
func DFSCycles(ctx context.Context, g *core.Graph, prune dfs.PruneFunc, visit func(cycle []string) bool) error {
	return dfs.Cycles(g, visit,
		dfs.WithContext(ctx),
		dfs.WithPrune(prune),
		dfs.WithUniqueVertexSets(),
	)
}

// Options configures MED construction and cycle search.
type Options struct {
	// RingSize is the number of outer ring nodes.
	RingSize int

	// RingMargin is added to the half diagonal of the diagram bbox.
	RingMargin float64

	// Parallel computes centers, adjacency and routes concurrently.
	Parallel bool

	// Workers bounds the goroutines used when Parallel is set;
	// non-positive means GOMAXPROCS.
	Workers int

	// Route configures the edge router.
	Route route.Options

	// Source enumerates cycles; nil means DFSCycles.
	Source CycleSource

	Logger *zap.Logger
}

// DefaultOptions returns a 16-node ring, margin 1000, sequential
// construction and default routing.
func DefaultOptions() Options {
	return Options{
		RingSize:   DefaultRingSize,
		RingMargin: DefaultRingMargin,
		Route:      route.DefaultOptions(),
		Source:     DFSCycles,
		Logger:     zap.NewNop(),
	}
}

func (o Options) normalized() Options {
	if o.RingSize < 3 {
		o.RingSize = DefaultRingSize
	}
	if o.RingMargin < 0 {
		o.RingMargin = 0
	}
	if o.Source == nil {
		o.Source = DFSCycles
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Route.Logger == nil {
		o.Route.Logger = o.Logger
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// forEach runs fn for 0..n-1, concurrently when Parallel is set. Results
// must be written by index; the first error cancels the rest.
func (o Options) forEach(ctx context.Context, n int, fn func(i int) error) error {
	if !o.Parallel || n < 2 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return fn(i)
		})
	}

	return g.Wait()
}
