// Package layout turns an abstract description into concrete curves.
//
// A Creator plans the order in which curves are added (package recompose),
// then embeds them one at a time:
//
//   - the first curve is a circle of BaseRadius;
//   - a curve splitting two or four zones that meet at a single point is a
//     circle around that point (piercing);
//   - a curve splitting one zone is a circle nested inside it;
//   - anything else follows a cycle of the modified Euler dual (package med),
//     optionally smoothed into a closed spline.
//
// Zones created along the way but absent from the description are reported
// as shaded regions.
package layout
