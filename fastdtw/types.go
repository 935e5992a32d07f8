// Package fastdtw defines configuration options and sentinel errors for the
// multiresolution DTW approximation.
package fastdtw

import (
	"errors"

	"github.com/katalvlaran/lvlwarp/dtw"
)

// Sentinel errors returned by the fastdtw package.
var (
	// ErrBadRadius indicates a negative search radius.
	ErrBadRadius = errors.New("fastdtw: radius must be non-negative")
)

// DefaultRadius is the neighborhood half-width used when no Options are
// supplied: one coarse cell on each side of the projected path.
const DefaultRadius = 1

// Options configures the FastDTW approximation.
//
// Radius – half-width, in coarse-resolution cells, of the neighborhood the
// coarse warping path is dilated by before projecting to the next finer
// level. Must be ≥ 0. Larger radii improve accuracy and raise cost;
// radius ≥ min(len(x), len(y)) reproduces the exact DTW result.
//
// Dist – pointwise distance used at every resolution level
// (nil = dtw.AbsDistance). Build a p-norm with dtw.PNormDistance.
type Options struct {
	Radius int
	Dist   dtw.DistanceFunc
}

// DefaultOptions returns Options with the defaults: Radius=DefaultRadius,
// Dist=nil (dtw.AbsDistance).
func DefaultOptions() Options {
	return Options{Radius: DefaultRadius}
}
