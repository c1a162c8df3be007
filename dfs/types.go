package dfs

import (
	"context"
	"errors"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Cycles.
var ErrGraphNil = errors.New("dfs: graph is nil")

// MinLength is the shortest simple cycle of an undirected simple graph.
const MinLength = 3

// PruneFunc decides whether a partial path can be abandoned. remaining is
// the number of vertices the path may still gain before closing.
// Returning true cuts the branch.
type PruneFunc func(path []string, remaining int) bool

// Option configures Cycles.
type Option func(*CycleOptions)

// CycleOptions holds the parameters of a cycle enumeration.
type CycleOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Prune, if non-nil, is consulted before extending a partial path.
	Prune PruneFunc

	// UniqueVertexSets drops a cycle whose vertex set was already reported.
	UniqueVertexSets bool
}

// DefaultOptions returns options with a background context, no pruning and
// no vertex-set deduplication.
func DefaultOptions() CycleOptions {
	return CycleOptions{Ctx: context.Background()}
}

// WithContext sets the context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *CycleOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPrune installs fn as a partial-path filter.
func WithPrune(fn PruneFunc) Option {
	return func(o *CycleOptions) { o.Prune = fn }
}

// WithUniqueVertexSets reports each vertex set once.
func WithUniqueVertexSets() Option {
	return func(o *CycleOptions) { o.UniqueVertexSets = true }
}
