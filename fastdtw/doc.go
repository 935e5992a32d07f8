// Package fastdtw approximates Dynamic Time Warping in linear time and
// memory with a coarse-to-fine multiresolution search (the FastDTW
// algorithm of Salvador & Chan).
//
// Exact DTW fills an n×m cost grid, which stops scaling long before the
// sequences do. FastDTW sidesteps the full grid:
//
//  1. Base — when min(n, m) < radius+2 the problem is small enough to
//     solve exactly over the full grid (dtw.DTW).
//  2. Recurse — otherwise halve both sequences by pairwise averaging,
//     solve the half-resolution problem recursively, dilate the coarse
//     warping path by the radius, project it back up to full resolution,
//     and run dtw.DTW restricted to that window.
//
// Each level touches O(radius·max(n, m)) cells and the recursion depth is
// O(log min(n, m)), so total time and memory stay linear in the sequence
// length. Radius trades accuracy for speed: radius 0 is the cheapest and
// least accurate; once radius ≥ min(n, m) the window covers the whole grid
// and the result is exactly the dtw.DTW result.
//
// Usage:
//
//	import (
//		"github.com/katalvlaran/lvlwarp/dtw"
//		"github.com/katalvlaran/lvlwarp/fastdtw"
//	)
//
//	opts := fastdtw.DefaultOptions() // Radius: 1, Dist: dtw.AbsDistance
//	opts.Radius = 4
//	cost, path, err := fastdtw.FastDTW(x, y, &opts)
//
// Complexity:
//
//	Time   = O(radius · max(n, m))
//	Memory = O(radius · max(n, m))
//
// Errors:
//   - ErrBadRadius — Radius < 0.
//   - dtw.ErrEmptyInput, dtw.ErrDimensionMismatch — propagated input checks.
package fastdtw
