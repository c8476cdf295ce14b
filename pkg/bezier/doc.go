// Package bezier evaluates polynomial Bézier curves of any degree.
//
// A curve is defined by an ordered list of control points. Evaluation uses
// De Casteljau's construction: the list is repeatedly reduced by replacing
// each adjacent pair with its linear interpolation at t until a single point
// remains. Cost is O(n²) per sample in the number of control points, which is
// fine for the tens of points an interactive editor deals with.
package bezier
