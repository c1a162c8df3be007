package route

import "go.uber.org/zap"

// Defaults for Options.
const (
	DefaultTiles           = 25
	DefaultDownsample      = 16
	DefaultMaxDistFallback = 1000.0

	// costScale scales the boundary-proximity cost of a tile.
	costScale = 2500.0
)

// Options tunes the router.
type Options struct {
	// Tiles is the tile count along the shorter side of the union bbox.
	Tiles int

	// Downsample keeps every Downsample-th tile of the found path.
	Downsample int

	// MaxDistFallback replaces a non-positive interior clearance.
	MaxDistFallback float64

	Logger *zap.Logger
}

// DefaultOptions returns 25 tiles, downsampling by 16 and a 1000 fallback.
func DefaultOptions() Options {
	return Options{
		Tiles:           DefaultTiles,
		Downsample:      DefaultDownsample,
		MaxDistFallback: DefaultMaxDistFallback,
		Logger:          zap.NewNop(),
	}
}

func (o Options) normalized() Options {
	if o.Tiles <= 0 {
		o.Tiles = DefaultTiles
	}
	if o.Downsample <= 0 {
		o.Downsample = DefaultDownsample
	}
	if o.MaxDistFallback <= 0 {
		o.MaxDistFallback = DefaultMaxDistFallback
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o
}
