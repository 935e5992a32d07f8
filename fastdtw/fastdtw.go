package fastdtw

import "github.com/katalvlaran/lvlwarp/dtw"

// FastDTW computes an approximate Dynamic Time Warping alignment between x
// and y in O(radius·max(n,m)) time and memory. Returns (cost, path, error)
// with the same path shape as dtw.DTW: {0,0} through {len(x)-1, len(y)-1}
// in unit monotone steps.
//
// opts may be nil, meaning DefaultOptions (Radius=1, dtw.AbsDistance).
//
// Preconditions (checked before any computation):
//  1. Radius ≥ 0 (ErrBadRadius).
//  2. Both sequences non-empty, fixed and equal element width
//     (dtw.ErrEmptyInput, dtw.ErrDimensionMismatch).
//
// The approximation restricts each refinement level to a window around the
// coarser level's path, so the returned cost is never below the exact DTW
// cost; once Radius ≥ min(len(x), len(y)) the two coincide.
func FastDTW(x, y dtw.Sequence, opts *Options) (float64, []dtw.Coord, error) {
	// 1) Apply options or defaults.
	radius := DefaultRadius
	var d dtw.DistanceFunc
	if opts != nil {
		radius = opts.Radius
		d = opts.Dist
	}

	// 2) Validate configuration and inputs up front: the recursion below
	//    must never see an invalid radius or ragged data.
	if radius < 0 {
		return 0, nil, ErrBadRadius
	}
	if err := dtw.Validate(x, y); err != nil {
		return 0, nil, err
	}

	return approximate(x, y, radius, d)
}

// approximate is the recursive multiresolution driver.
//
// Base: below radius+2 points the coarse neighborhood would already span
// the whole grid, so solve exactly. Recurse: halve both sequences, align
// the halves, and refine inside the expanded window. The recursion halves
// the shorter length every level, so its depth is O(log min(n,m)).
func approximate(x, y dtw.Sequence, radius int, d dtw.DistanceFunc) (float64, []dtw.Coord, error) {
	minSize := radius + 2
	if len(x) < minSize || len(y) < minSize {
		return dtw.DTW(x, y, &dtw.Options{Dist: d})
	}

	_, coarse, err := approximate(reduceByHalf(x), reduceByHalf(y), radius, d)
	if err != nil {
		return 0, nil, err
	}

	window := expandWindow(coarse, len(x), len(y), radius)

	return dtw.DTW(x, y, &dtw.Options{Window: window, Dist: d})
}
