package render

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"github.com/katalvlaran/icurves/layout"
	"honnef.co/go/curve"
)

var svgPath = curve.SVGOptions{MaxPrecision: 2}

// WriteSVG writes d as a standalone SVG document.
//
// Layers, bottom to top: background, shaded regions, curves with labels,
// the dual graph when requested.
func WriteSVG(w io.Writer, d *layout.Diagram, opts Options) error {
	frame, err := Frame(d, opts)
	if err != nil {
		return err
	}
	opts = opts.normalized()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f">`+"\n",
		frame.X0, frame.Y0, frame.Width(), frame.Height())
	fmt.Fprintf(bw, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="white"/>`+"\n",
		frame.X0, frame.Y0, frame.Width(), frame.Height())

	fmt.Fprintln(bw, `<g id="shaded">`)
	for _, r := range d.Shaded {
		fmt.Fprintf(bw, `<path data-zone=%q fill="%s" fill-rule="evenodd" d="`, r.Zone.Informal(), hex(ShadedFill))
		if err := ringPath(r.Polygon()).WriteSVG(bw, svgPath); err != nil {
			return fmt.Errorf("WriteSVG: %w", err)
		}
		fmt.Fprintln(bw, `"/>`)
	}
	fmt.Fprintln(bw, `</g>`)

	fmt.Fprintln(bw, `<g id="curves" fill="none">`)
	for i, c := range d.Curves {
		col := hex(colorOf(i))
		outline := c.Outline()
		fmt.Fprintf(bw, `<path data-curve=%q stroke="%s" stroke-width="%.2f" d="`, string(c.Label()), col, opts.StrokeWidth)
		if err := outline.WriteSVG(bw, svgPath); err != nil {
			return fmt.Errorf("WriteSVG: %w", err)
		}
		fmt.Fprintln(bw, `"/>`)
		at := labelAt(outline)
		fmt.Fprintf(bw, `<text x="%.2f" y="%.2f" fill="%s" font-size="%.2f">%s</text>`+"\n",
			at.X, at.Y, col, opts.FontSize, html.EscapeString(string(c.Label())))
	}
	fmt.Fprintln(bw, `</g>`)

	if opts.ShowMED && d.MED != nil {
		fmt.Fprintln(bw, `<g id="med" stroke="#555555" fill="#555555">`)
		for _, e := range d.MED.Edges() {
			fmt.Fprint(bw, `<polyline fill="none" stroke-width="4" points="`)
			for k, pt := range e.Points {
				if k > 0 {
					fmt.Fprint(bw, " ")
				}
				fmt.Fprintf(bw, "%.2f,%.2f", pt.X, pt.Y)
			}
			fmt.Fprintln(bw, `"/>`)
		}
		for _, n := range d.MED.Nodes() {
			fmt.Fprintf(bw, `<circle data-node=%q cx="%.2f" cy="%.2f" r="12"/>`+"\n", n.ID, n.Point.X, n.Point.Y)
		}
		fmt.Fprintln(bw, `</g>`)
	}

	fmt.Fprintln(bw, `</svg>`)

	return bw.Flush()
}
