// Package route finds a polyline between the centers of two adjacent
// regions that stays inside their union.
//
// The union is tiled into a grid whose cells cost more the closer they are
// to the union boundary; gridgraph.ShortestPath then finds the cheapest
// 8-connected tile path, which is thinned and pinned to the exact centers.
package route
