package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/icurves/geometry"
	"github.com/katalvlaran/icurves/layout"
	"honnef.co/go/curve"
)

// ErrEmptyDiagram indicates a diagram without curves.
var ErrEmptyDiagram = errors.New("render: diagram has no curves")

// ErrUnknownFormat indicates an output format other than svg or png.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format is an output encoding.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat accepts "svg" and "png" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case SVG, PNG:
		return f, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Options controls the drawing. Lengths are in diagram units.
type Options struct {
	// Margin pads the curves' bounding box.
	Margin float64

	// StrokeWidth of curve outlines.
	StrokeWidth float64

	// FontSize of curve labels.
	FontSize float64

	// Scale maps diagram units to PNG pixels.
	Scale float64

	// Flatness is the tolerance used to flatten outlines for PNG output.
	Flatness float64

	// ShowMED overlays the dual graph when the diagram kept one.
	ShowMED bool
}

// DefaultOptions returns a 200 unit margin, 16 unit strokes, 72 unit
// labels and a 0.1 PNG scale.
func DefaultOptions() Options {
	return Options{
		Margin:      200,
		StrokeWidth: 16,
		FontSize:    72,
		Scale:       0.1,
		Flatness:    0.5,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Margin < 0 {
		o.Margin = 0
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = def.StrokeWidth
	}
	if o.FontSize <= 0 {
		o.FontSize = def.FontSize
	}
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	if o.Flatness <= 0 {
		o.Flatness = def.Flatness
	}

	return o
}

// Frame returns the drawing area: the union of all curve outlines and the
// dual graph when shown, padded by the margin.
func Frame(d *layout.Diagram, opts Options) (curve.Rect, error) {
	if d == nil || len(d.Curves) == 0 {
		return curve.Rect{}, ErrEmptyDiagram
	}
	opts = opts.normalized()
	frame := d.Curves[0].Outline().BoundingBox()
	for _, c := range d.Curves[1:] {
		frame = frame.Union(c.Outline().BoundingBox())
	}
	if opts.ShowMED && d.MED != nil {
		for _, n := range d.MED.Nodes() {
			frame = frame.UnionPoint(n.Point)
		}
	}
	pad := opts.Margin + opts.FontSize

	return frame.Inflate(pad, pad), nil
}

// labelAt returns the anchor of a curve label.
func labelAt(outline curve.BezPath) curve.Point {
	box := outline.BoundingBox()

	return curve.Pt(box.MaxX(), box.MinY())
}

// ringPath converts polygon rings to a closed path.
func ringPath(p geometry.Polygon) curve.BezPath {
	var path curve.BezPath
	for _, r := range p.Rings() {
		if len(r.Points) < 3 {
			continue
		}
		path.MoveTo(r.Points[0])
		for _, pt := range r.Points[1:] {
			path.LineTo(pt)
		}
		path.ClosePath()
	}

	return path
}
