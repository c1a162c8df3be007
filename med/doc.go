// Package med builds the modified Euler dual (MED) of a diagram and searches
// it for the cycle a new curve should follow.
//
// The MED has one node per region, placed at the region center, and a ring
// of nodes around the whole diagram standing in for the outside region.
// Adjacent regions are joined by a straight edge when that segment crosses
// only the curve separating them, and by a routed polyline otherwise.
//
// FindCycle enumerates simple cycles shortest first and returns the first one
// that covers the zones to split and encloses no other node.
package med
