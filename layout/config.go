package layout

import (
	"time"

	"github.com/katalvlaran/icurves/diagram"
	"github.com/katalvlaran/icurves/med"
	"github.com/katalvlaran/icurves/recompose"
	"go.uber.org/zap"
	"honnef.co/go/curve"
)

// Config is the immutable configuration of a Creator.
type Config struct {
	// Strategy orders curve removal during decomposition.
	Strategy recompose.Strategy

	// Geometry configures curves, regions and piercing.
	Geometry diagram.Options

	// MED configures the dual graph, its ring, routing and cycle search.
	MED med.Options

	// Smooth replaces cycle polylines by closed splines.
	Smooth bool

	// KeepMED exposes the last dual graph on the Diagram.
	KeepMED bool

	// CycleTimeout bounds each cycle search; zero means no limit.
	CycleTimeout time.Duration

	Logger *zap.Logger
}

// Option configures a Creator.
type Option func(*Config)

// DefaultConfig returns the innermost strategy, default geometry and MED
// options, smoothing on and a no-op logger.
func DefaultConfig() Config {
	return Config{
		Strategy: recompose.Innermost,
		Geometry: diagram.DefaultOptions(),
		MED:      med.DefaultOptions(),
		Smooth:   true,
		Logger:   zap.NewNop(),
	}
}

// WithStrategy sets the decomposition strategy. nil has no effect.
func WithStrategy(s recompose.Strategy) Option {
	return func(c *Config) {
		if s != nil {
			c.Strategy = s
		}
	}
}

// WithBaseRadius sets the radius of the first circles.
func WithBaseRadius(r float64) Option {
	return func(c *Config) { c.Geometry.BaseRadius = r }
}

// WithBBox sets the rectangle every region is clipped to.
func WithBBox(r curve.Rect) Option {
	return func(c *Config) { c.Geometry.BBox = r }
}

// WithPrecision sets the Polylabel precision for region centers.
func WithPrecision(p float64) Option {
	return func(c *Config) { c.Geometry.Precision = p }
}

// WithCircleSegments sets the vertex count of circle polygons.
func WithCircleSegments(n int) Option {
	return func(c *Config) { c.Geometry.CircleSegments = n }
}

// WithProbeOffset sets the adjacency probe distance.
func WithProbeOffset(p float64) Option {
	return func(c *Config) { c.Geometry.ProbeOffset = p }
}

// WithTieBreak sets the piercing tie-break policy.
func WithTieBreak(t diagram.TieBreak) Option {
	return func(c *Config) { c.Geometry.TieBreak = t }
}

// WithRing sets the ring node count and margin of the dual graph.
func WithRing(size int, margin float64) Option {
	return func(c *Config) {
		c.MED.RingSize = size
		c.MED.RingMargin = margin
	}
}

// WithParallel enables concurrent MED construction on up to workers
// goroutines; workers <= 0 means GOMAXPROCS.
func WithParallel(workers int) Option {
	return func(c *Config) {
		c.MED.Parallel = true
		c.MED.Workers = workers
	}
}

// WithRouting sets the router tile count and downsampling step.
func WithRouting(tiles, downsample int) Option {
	return func(c *Config) {
		c.MED.Route.Tiles = tiles
		c.MED.Route.Downsample = downsample
	}
}

// WithCycleSource replaces the cycle enumerator.
func WithCycleSource(s med.CycleSource) Option {
	return func(c *Config) { c.MED.Source = s }
}

// WithSmooth toggles spline smoothing of cycle curves.
func WithSmooth(on bool) Option {
	return func(c *Config) { c.Smooth = on }
}

// WithKeepMED keeps the last dual graph on the Diagram.
func WithKeepMED() Option {
	return func(c *Config) { c.KeepMED = true }
}

// WithCycleTimeout bounds every cycle search.
func WithCycleTimeout(d time.Duration) Option {
	return func(c *Config) { c.CycleTimeout = d }
}

// WithLogger sets the logger of every component. nil has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l == nil {
			return
		}
		c.Logger = l
		c.Geometry.Logger = l.Named("diagram")
		c.MED.Logger = l.Named("med")
		c.MED.Route.Logger = l.Named("route")
	}
}

// finalize fills the gaps a zero Config or a nil Option argument leaves.
func (c Config) finalize() Config {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Strategy == nil {
		c.Strategy = recompose.Innermost
	}
	if c.Geometry.Logger == nil {
		c.Geometry.Logger = c.Logger
	}
	if c.MED.Logger == nil {
		c.MED.Logger = c.Logger
	}
	if c.MED.Route.Logger == nil {
		c.MED.Route.Logger = c.Logger
	}

	return c
}
