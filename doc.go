// Package icurves lays out Euler diagrams incrementally: curves are added
// one at a time, each drawn through the regions it has to split.
//
// A description such as "a b c ab ac bc abc" lists the zones a diagram must
// show. The layout decomposes it curve by curve, then re-adds the curves in
// reverse, placing each one as a circle when a piercing pattern allows it
// and otherwise routing a closed path through a dual graph of the regions.
//
// Subpackages:
//
//	description/  curves, zones and abstract descriptions, example catalogue
//	recompose/    decomposition strategies and the recomposition plan
//	geometry/     polygons, overlay, distances, pole of inaccessibility
//	diagram/      concrete curves, regions, adjacency and piercing search
//	core/         the undirected graph store of the dual graph
//	bfs/, dfs/    reachability and cycle enumeration over core graphs
//	gridgraph/    A* over cost grids
//	route/        edge routing between adjacent regions
//	med/          the modified Euler dual and its cycle search
//	matrix/       dense matrices with LU solve
//	spline/       closed cubic Bézier smoothing of cycle polylines
//	layout/       the orchestrator
//	render/       SVG and PNG output
//	config/       YAML and TOML settings files
//
// Quick example:
//
//	d := description.MustParse("a b c ab ac bc abc")
//	out, err := layout.NewCreator().Create(ctx, d)
//	// out.Curves holds three circles, out.Regions all eight zones.
//
// The icurves command (cmd/icurves) renders descriptions from the shell.
package icurves
