package dtw

import "math"

// AbsDistance is the default DistanceFunc: the element-wise absolute
// difference, summed across the vector width. On scalar (width-1)
// sequences this is exactly |a - b|; on wider vectors it is the 1-norm of
// the difference.
func AbsDistance(a, b []float64) float64 {
	var sum float64
	for k := range a {
		sum += math.Abs(a[k] - b[k])
	}

	return sum
}

// PNormDistance builds a DistanceFunc computing the p-norm of the
// element-wise difference:
//
//	d(a, b) = (Σ |a[k] - b[k]|^p)^(1/p)
//
// p must be > 0; otherwise ErrBadExponent is returned and no alignment
// work is performed. p = 2 yields the Euclidean distance between matched
// points.
func PNormDistance(p float64) (DistanceFunc, error) {
	if p <= 0 {
		return nil, ErrBadExponent
	}

	return func(a, b []float64) float64 {
		var sum float64
		for k := range a {
			sum += math.Pow(math.Abs(a[k]-b[k]), p)
		}

		return math.Pow(sum, 1/p)
	}, nil
}

// Validate checks the shared preconditions of DTW and fastdtw.FastDTW:
// both sequences non-empty (ErrEmptyInput), each sequence rectangular, and
// both carrying the same element width (ErrDimensionMismatch). It runs
// before any distance is evaluated, so invalid inputs are rejected without
// touching the data.
func Validate(x, y Sequence) error {
	if len(x) == 0 || len(y) == 0 {
		return ErrEmptyInput
	}
	width := len(x[0])
	for _, e := range x {
		if len(e) != width {
			return ErrDimensionMismatch
		}
	}
	for _, e := range y {
		if len(e) != width {
			return ErrDimensionMismatch
		}
	}

	return nil
}
