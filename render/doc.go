// Package render draws a finished layout as SVG or PNG.
//
// Shaded regions are filled light grey beneath the curves, every curve is
// stroked in its own palette colour and labelled at the top-right corner
// of its bounding box. When the layout kept its dual graph, ShowMED
// overlays its edges and nodes.
package render
