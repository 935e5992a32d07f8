// Package dtw computes exact Dynamic Time Warping (DTW) alignments between
// numeric sequences, over the full cost grid or an explicit search window.
//
// DTW measures similarity between two sequences that may vary in time or
// speed by finding the minimum-cost monotone “warping path” through the
// grid of pointwise distances. It is widely used in speech recognition,
// time-series analysis, gesture matching, and many other domains.
//
// Algorithm Outline (windowed sparse DP):
//  1. Let n = len(x), m = len(y). Maintain a sparse cost table keyed by
//     1-based (i, j); absent cells read as +∞. Seed (0,0) → cost 0.
//  2. Visit every window cell (i, j) in row-major order (the full grid when
//     no window is given). For each cell:
//     d     = Dist(x[i-1], y[j-1])
//     up    = table[i-1, j].cost
//     left  = table[i, j-1].cost
//     diag  = table[i-1, j-1].cost
//     table[i, j] = (d + min(up, left, diag), argmin cell)
//     Ties resolve up, then left, then diagonal.
//  3. cost = table[n, m].cost. If it is +∞ the window admits no monotone
//     path from (0,0) to (n,m) and DTW returns ErrWindowInfeasible.
//  4. Recover the path by following predecessor links from (n, m) back to
//     (0, 0), then reverse it.
//
// Elements are fixed-width vectors ([]float64); width 1 models plain
// scalars (see Scalars). The pointwise distance defaults to AbsDistance
// and can be replaced by a p-norm (PNormDistance) or any DistanceFunc.
//
// Complexity:
//
//	Time   = O(|window|)  —  O(n·m) for the full grid
//	Memory = O(|window|)  —  one sparse table entry per visited cell
//
// Errors:
//   - ErrEmptyInput         — either input sequence is empty.
//   - ErrDimensionMismatch  — ragged elements, or x and y widths differ.
//   - ErrBadExponent        — PNormDistance called with p ≤ 0.
//   - ErrWindowInfeasible   — the window disconnects (0,0) from (n,m).
//
// See fastdtw for the linear-time multiresolution approximation built on
// top of this package.
package dtw
