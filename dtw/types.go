// Package dtw defines the sequence, window, and option types shared by the
// exact aligner and its fastdtw consumer, plus the package's sentinel errors.
package dtw

import "errors"

// Sentinel errors returned by the dtw package.
var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrDimensionMismatch indicates that sequence elements do not share a
	// single fixed width: either a sequence is ragged, or the two sequences
	// carry vectors of different widths.
	ErrDimensionMismatch = errors.New("dtw: sequence elements must have equal width")

	// ErrBadExponent indicates a non-positive p-norm exponent.
	ErrBadExponent = errors.New("dtw: p-norm exponent must be positive")

	// ErrWindowInfeasible indicates that the supplied window contains no
	// monotone chain of cells connecting (0,0) to (n-1,m-1). Windows built
	// by fastdtw are connected by construction, so seeing this error there
	// means window construction itself is broken, not the input.
	ErrWindowInfeasible = errors.New("dtw: window admits no alignment path")
)

// Sequence is an ordered series of fixed-width numeric vectors. Every
// element must have the same length; width 1 represents a scalar series.
// Sequences are read-only to this package.
type Sequence [][]float64

// Scalars wraps a plain scalar series as a width-1 Sequence.
func Scalars(xs []float64) Sequence {
	s := make(Sequence, len(xs))
	for i, v := range xs {
		s[i] = []float64{v}
	}

	return s
}

// Coord is a single cell of the alignment grid, 0-based: I indexes the
// first sequence, J the second. A warping path is an ordered []Coord.
type Coord struct {
	I, J int
}

// Window is an ordered list of permissible alignment cells, 0-based.
// A nil Window means the full n×m grid.
//
// Cells must be ordered so that each cell's predecessors — (i-1, j),
// (i, j-1), (i-1, j-1) — appear before it; row-major order (non-decreasing
// i, then j) always satisfies this. Duplicate cells are harmless.
type Window []Coord

// DistanceFunc measures the pointwise cost between one element of each
// sequence. It must be deterministic, side-effect-free, and non-negative.
type DistanceFunc func(a, b []float64) float64

// Options configures the exact aligner.
//
// Window – restrict the dynamic program to these cells (nil = full grid).
// Dist   – pointwise distance (nil = AbsDistance).
type Options struct {
	Window Window
	Dist   DistanceFunc
}

// DefaultOptions returns Options with the defaults: full grid, AbsDistance.
func DefaultOptions() Options {
	return Options{}
}
