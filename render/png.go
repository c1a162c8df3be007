package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/katalvlaran/icurves/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"
)

// Raster draws d into a new RGBA image.
//
// Stages:
//  1. Size the image from the frame and the scale.
//  2. Fill shaded regions.
//  3. Stroke each flattened outline segment as a quad.
//  4. Draw labels in Go Regular at the scaled font size.
//
// Complexity: O(P·W·H) worst case for P flattened segments.
func Raster(d *layout.Diagram, opts Options) (*image.RGBA, error) {
	frame, err := Frame(d, opts)
	if err != nil {
		return nil, err
	}
	opts = opts.normalized()

	// Stage 1: canvas
	w := int(math.Ceil(frame.Width() * opts.Scale))
	h := int(math.Ceil(frame.Height() * opts.Scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	toPx := curve.Translate(curve.Vec2{X: -frame.X0, Y: -frame.Y0}).ThenScale(opts.Scale, opts.Scale)
	ras := vector.NewRasterizer(w, h)

	// Stage 2: shaded
	for _, r := range d.Shaded {
		ras.Reset(w, h)
		fillPath(ras, ringPath(r.Polygon()).Transform(toPx), opts.Flatness)
		ras.Draw(img, img.Bounds(), image.NewUniform(ShadedFill), image.Point{})
	}

	// Stage 3: outlines
	half := math.Max(opts.StrokeWidth*opts.Scale/2, 0.5)
	for i, c := range d.Curves {
		ras.Reset(w, h)
		strokePath(ras, c.Outline().Transform(toPx), opts.Flatness, half)
		ras.Draw(img, img.Bounds(), image.NewUniform(colorOf(i)), image.Point{})
	}
	if opts.ShowMED && d.MED != nil {
		ras.Reset(w, h)
		for _, e := range d.MED.Edges() {
			for k := 1; k < len(e.Points); k++ {
				quad(ras, e.Points[k-1].Transform(toPx), e.Points[k].Transform(toPx), 0.5)
			}
		}
		ras.Draw(img, img.Bounds(), image.NewUniform(color.Gray{Y: 0x55}), image.Point{})
	}

	// Stage 4: labels
	face, err := labelFace(opts.FontSize * opts.Scale)
	if err != nil {
		return nil, fmt.Errorf("Raster: %w", err)
	}
	defer face.Close()
	for i, c := range d.Curves {
		at := labelAt(c.Outline()).Transform(toPx)
		dr := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(colorOf(i)),
			Face: face,
			Dot:  fixed.P(int(at.X), int(at.Y)),
		}
		dr.DrawString(string(c.Label()))
	}

	return img, nil
}

func labelFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    math.Max(size, 6),
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// WritePNG encodes Raster(d, opts) to w.
func WritePNG(w io.Writer, d *layout.Diagram, opts Options) error {
	img, err := Raster(d, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("WritePNG: %w", err)
	}

	return nil
}

// Write encodes d in the given format.
func Write(w io.Writer, d *layout.Diagram, format Format, opts Options) error {
	switch format {
	case SVG:
		return WriteSVG(w, d, opts)
	case PNG:
		return WritePNG(w, d, opts)
	}

	return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

func pt32(p curve.Point) (float32, float32) { return float32(p.X), float32(p.Y) }

// fillPath adds the flattened closed subpaths of p to ras.
func fillPath(ras *vector.Rasterizer, p curve.BezPath, flatness float64) {
	for el := range p.Flatten(flatness) {
		switch el.Kind {
		case curve.MoveToKind:
			ras.MoveTo(pt32(el.P0))
		case curve.LineToKind:
			ras.LineTo(pt32(el.P0))
		case curve.ClosePathKind:
			ras.ClosePath()
		}
	}
}

// strokePath adds one quad per flattened segment of p.
func strokePath(ras *vector.Rasterizer, p curve.BezPath, flatness, half float64) {
	var start, last curve.Point
	for el := range p.Flatten(flatness) {
		switch el.Kind {
		case curve.MoveToKind:
			start, last = el.P0, el.P0
		case curve.LineToKind:
			quad(ras, last, el.P0, half)
			last = el.P0
		case curve.ClosePathKind:
			quad(ras, last, start, half)
			last = start
		}
	}
}

// quad adds the rectangle of half-width half around segment a-b, extended
// by half at both ends so that consecutive segments join without gaps.
func quad(ras *vector.Rasterizer, a, b curve.Point, half float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	ux, uy := dx/l*half, dy/l*half
	nx, ny := -uy, ux
	ax, ay := a.X-ux, a.Y-uy
	bx, by := b.X+ux, b.Y+uy
	ras.MoveTo(float32(ax+nx), float32(ay+ny))
	ras.LineTo(float32(bx+nx), float32(by+ny))
	ras.LineTo(float32(bx-nx), float32(by-ny))
	ras.LineTo(float32(ax-nx), float32(ay-ny))
	ras.ClosePath()
}
