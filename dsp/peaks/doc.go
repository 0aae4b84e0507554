// Package peaks finds and ranks local maxima in real-valued energy sequences.
//
// Detection works in three steps:
//
//   - [Find] locates local maxima whose height exceeds a threshold and thins
//     them so that no two survivors are closer than a minimum bin distance.
//   - [Rank] keeps peaks below a bin limit and orders them by descending
//     height. Equal heights keep detection order (lower bin first).
//   - [Encode] flattens ranked bins into the paired float32 wire format,
//     where every bin index appears twice in a row.
//
// [Detect] runs Find and Rank and returns a [Result] with parallel bin and
// height slices.
//
// # Local maxima
//
// A sample is a local maximum when it is strictly greater than its left
// neighbour and greater than its right neighbour. A flat top of equal values
// counts once, at its middle sample (the lower middle for even widths). The
// first and last samples never qualify.
//
// # Distance
//
// Peaks are visited from tallest to shortest, lower bin first among equal
// heights. Each visited peak that is still kept removes every other peak
// closer than minDistance bins. A minDistance of 0 or 1 imposes no constraint.
package peaks
