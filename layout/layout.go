package layout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/diagram"
	"github.com/katalvlaran/icurves/med"
	"github.com/katalvlaran/icurves/recompose"
	"github.com/katalvlaran/icurves/spline"
	"go.uber.org/zap"
	"honnef.co/go/curve"
)

// ErrPiercingFailed is returned when a two- or four-zone cycle cannot be
// re-embedded as a piercing circle.
var ErrPiercingFailed = errors.New("layout: piercing re-embedding failed")

// Creator lays out descriptions. It is safe for concurrent use; every
// Create call works on its own state.
type Creator struct {
	cfg Config
}

// NewCreator returns a Creator configured by DefaultConfig and opts.
func NewCreator(opts ...Option) *Creator {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Creator{cfg: cfg.finalize()}
}

// NewCreatorFromConfig returns a Creator using cfg as is.
func NewCreatorFromConfig(cfg Config) *Creator {
	return &Creator{cfg: cfg.finalize()}
}

// Config returns the configuration in use.
func (c *Creator) Config() Config { return c.cfg }

// run is the state of one Create call.
type run struct {
	cfg     Config
	log     *zap.Logger
	curves  []diagram.Curve
	visited []description.Region
	seen    map[description.Region]bool
	lastMED *med.MED
}

func (r *run) visit(zones ...description.Region) {
	for _, z := range zones {
		if z.IsOutside() || r.seen[z] {
			continue
		}
		r.seen[z] = true
		r.visited = append(r.visited, z)
	}
}

func (r *run) arena(step int) *diagram.Arena {
	return diagram.NewArena(step, description.NewDescription(r.visited...), r.curves, r.cfg.Geometry)
}

func (r *run) circle(label description.Curve, center curve.Point, radius float64) *diagram.Circle {
	return diagram.NewCircle(label, center, radius, r.cfg.Geometry.CircleSegments)
}

// Create embeds d curve by curve.
//
// Steps:
//  1. Plan the recomposition steps with the configured strategy.
//  2. Embed each step's curve (see embed).
//  3. Resolve the description zones and the shaded zones on the final
//     arena.
//
// Routing failures, missing cycles and failed re-embeddings are fatal.
func (c *Creator) Create(ctx context.Context, d description.Description) (*Diagram, error) {
	started := time.Now()
	steps, err := recompose.Plan(d, c.cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("Create(%s): %w", d.Informal(), err)
	}

	r := &run{
		cfg:  c.cfg,
		log:  c.cfg.Logger.With(zap.String("description", d.Informal())),
		seen: make(map[description.Region]bool),
	}
	out := &Diagram{Description: d}
	for i, step := range steps {
		t0 := time.Now()
		report, err := r.embed(ctx, i, step)
		if err != nil {
			return nil, fmt.Errorf("Create(%s): step %d (%s): %w", d.Informal(), i, step.Data.Added, err)
		}
		report.Duration = time.Since(t0)
		out.Steps = append(out.Steps, report)
		r.log.Debug("curve embedded",
			zap.Int("step", i),
			zap.String("curve", string(report.Added)),
			zap.Stringer("method", report.Method),
			zap.Int("cycle", report.CycleLength),
			zap.Duration("took", report.Duration))
	}

	final := r.arena(len(steps))
	out.Curves = append([]diagram.Curve(nil), r.curves...)
	out.Arena = final
	out.Regions = make(map[description.Region]*diagram.Region, d.NumZones())
	for _, z := range d.Zones() {
		if reg, ok := final.Region(z); ok {
			out.Regions[z] = reg
		} else {
			r.log.Warn("zone never embedded", zap.String("zone", z.String()))
		}
	}
	for _, z := range r.visited {
		if !d.IncludesZone(z) {
			reg, _ := final.Region(z)
			out.Shaded = append(out.Shaded, reg)
		}
	}
	if c.cfg.KeepMED {
		out.MED = r.lastMED
	}
	r.log.Info("diagram created",
		zap.Int("curves", len(out.Curves)),
		zap.Int("shaded", len(out.Shaded)),
		zap.Duration("took", time.Since(started)))

	return out, nil
}

// embed adds the curve of step i.
func (r *run) embed(ctx context.Context, i int, step recompose.Step) (StepReport, error) {
	data := step.Data
	report := StepReport{Index: i, Added: data.Added, Split: data.Split}
	base := r.cfg.Geometry.BaseRadius

	if i == 0 {
		r.visit(data.New...)
		r.curves = append(r.curves, r.circle(data.Added, curve.Pt(base, base), base))
		report.Method = MethodBase

		return report, nil
	}

	arena := r.arena(i)
	regionsOf := func(zones []description.Region) []*diagram.Region {
		out := make([]*diagram.Region, 0, len(zones))
		for _, z := range zones {
			if reg, ok := arena.Region(z); ok {
				out = append(out, reg)
			} else {
				out = append(out, arena.Outside())
			}
		}

		return out
	}
	movedInside := func(zones []description.Region) []description.Region {
		out := make([]description.Region, len(zones))
		for k, z := range zones {
			out[k] = z.MoveInside(data.Added)
		}

		return out
	}

	// piercing shortcuts
	var placed diagram.Curve
	switch {
	case data.IsMaybeDoublePiercing():
		cl, err := recompose.NewCluster(data.Split...)
		if err != nil {
			break
		}
		p := diagram.FindPiercing(regionsOf(cl.Zones()), arena.Regions(), r.cfg.Geometry)
		if !p.IsPiercing() {
			break
		}
		if len(r.curves) == 2 {
			placed = r.circle(data.Added, curve.Pt(1.5*base, 2*base), base)
		} else {
			placed = r.circle(data.Added, p.Center, p.Radius/2)
		}
		report.Method = MethodDoublePiercing
	case data.IsSinglePiercing():
		p := diagram.FindPiercing(regionsOf(data.Split), arena.Regions(), r.cfg.Geometry)
		if !p.IsPiercing() {
			break
		}
		if len(r.curves) == 1 {
			placed = r.circle(data.Added, curve.Pt(2*base, base), base)
		} else {
			placed = r.circle(data.Added, p.Center, p.Radius/2)
		}
		report.Method = MethodSinglePiercing
	case data.IsNested():
		reg := regionsOf(data.Split)[0]
		placed = r.circle(data.Added, reg.Center(), reg.Clearance()/2)
		report.Method = MethodNested
	}
	if placed != nil {
		r.visit(movedInside(data.Split)...)
		r.curves = append(r.curves, placed)

		return report, nil
	}

	// dual cycle
	m, err := med.Build(ctx, arena, r.cfg.MED)
	if err != nil {
		return report, err
	}
	r.lastMED = m
	cctx := ctx
	if r.cfg.CycleTimeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, r.cfg.CycleTimeout)
		defer cancel()
	}
	cycle, err := m.FindCycle(cctx, data.Split)
	if err != nil {
		return report, err
	}
	report.CycleLength = cycle.Len()
	report.Method = MethodCycle

	var embedded diagram.Curve = diagram.NewPath(data.Added, cycle.Path, r.cfg.Geometry.Flatness)
	switch cycle.LengthUnique() {
	case 2, 4:
		p := diagram.FindPiercing(cycle.UniqueRegions(), arena.Regions(), r.cfg.Geometry)
		if !p.IsPiercing() {
			return report, fmt.Errorf("%d-zone cycle %v: %w", cycle.LengthUnique(), cycle.Zones(), ErrPiercingFailed)
		}
		embedded = r.circle(data.Added, p.Center, p.Radius/2)
		if cycle.LengthUnique() == 2 {
			report.Method = MethodCycleSinglePiercing
		} else {
			report.Method = MethodCycleDoublePiercing
		}
	default:
		if r.cfg.Smooth {
			smoothed, err := spline.Smooth(cycle.SmoothingData)
			if err != nil {
				r.log.Warn("smoothing failed",
					zap.String("curve", string(data.Added)),
					zap.String("fallback", "polyline"),
					zap.Error(err))
			} else {
				embedded = diagram.NewPath(data.Added, smoothed, r.cfg.Geometry.Flatness)
			}
		}
	}

	r.visit(movedInside(cycle.Zones())...)
	r.curves = append(r.curves, embedded)

	return report, nil
}
