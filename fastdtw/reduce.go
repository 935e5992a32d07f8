package fastdtw

import "github.com/katalvlaran/lvlwarp/dtw"

// reduceByHalf produces the next-coarser resolution of s: a sequence of
// length ⌊len(s)/2⌋ whose k-th element is the element-wise mean of
// s[2k] and s[2k+1]. An odd trailing element is dropped. The input is
// never mutated.
func reduceByHalf(s dtw.Sequence) dtw.Sequence {
	half := len(s) / 2
	out := make(dtw.Sequence, half)
	for k := 0; k < half; k++ {
		a, b := s[2*k], s[2*k+1]
		mean := make([]float64, len(a))
		for w := range a {
			mean[w] = (a[w] + b[w]) / 2
		}
		out[k] = mean
	}

	return out
}
