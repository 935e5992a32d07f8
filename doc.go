// Package lvlwarp aligns ordered numeric sequences with Dynamic Time
// Warping — exactly, or in linear time with a coarse-to-fine
// multiresolution search.
//
// 🚀 What is lvlwarp?
//
//	A compact, pure-Go time-series alignment library with two engines:
//		• dtw/     — exact windowed DTW: minimum-cost monotone warping path
//		  over the full grid or an explicit search window
//		• fastdtw/ — the FastDTW approximation: recursively halve the
//		  resolution, align coarsely, then refine inside a radius-dilated
//		  band around the coarse path
//
// ✨ Why choose lvlwarp?
//
//   - Scalars or fixed-width vectors – one Sequence type covers both
//   - Pluggable distance – absolute difference, any p-norm, or your own func
//   - Exact when you need it – radius ≥ min(n,m) reproduces exact DTW
//   - Linear when you don't – O(radius·max(n,m)) time and memory
//   - Pure Go – no cgo, no hidden deps
//
// Quick example:
//
//	x := dtw.Scalars([]float64{1, 2, 3, 4, 5})
//	y := dtw.Scalars([]float64{2, 3, 4})
//	cost, path, err := fastdtw.FastDTW(x, y, nil) // radius 1 by default
//	// cost = 2, path = [{0 0} {1 0} {2 1} {3 2} {4 2}]
//
// Pick dtw.DTW for ground truth on short sequences, fastdtw.FastDTW when
// n·m cells stop fitting your latency or memory budget.
//
//	go get github.com/katalvlaran/lvlwarp
package lvlwarp
