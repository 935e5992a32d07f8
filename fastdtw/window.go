package fastdtw

import "github.com/katalvlaran/lvlwarp/dtw"

// expandWindow projects a coarse-resolution warping path into a search
// window for the aligner at the next finer resolution (lenX × lenY grid).
//
// Three phases:
//  1. Dilation — grow every coarse path cell into its Chebyshev ball of
//     the given radius. Cells with negative indices stay in the set; they
//     simply never match a grid row below.
//  2. Upsampling — map every dilated coarse cell (i, j) to its four fine
//     children (2i, 2j), (2i, 2j+1), (2i+1, 2j), (2i+1, 2j+1), inverting
//     the pairwise halving of reduceByHalf.
//  3. Row-contiguous extraction — walk fine rows in order, scanning each
//     row from the previous row's first matched column, collecting the
//     contiguous run of member cells and stopping at the first miss after
//     a hit. A row with no matches keeps the previous start column.
//
// Phase 3 relies on the band being row-contiguous with a non-decreasing
// start column, which holds for radius-dilated upsampled diagonal paths.
// It is not a general sparse-set scan and must not be reused for windows
// of arbitrary shape.
//
// The result is row-major and connects (0,0) to (lenX-1, lenY-1), so the
// aligner can consume it directly.
func expandWindow(path []dtw.Coord, lenX, lenY, radius int) dtw.Window {
	// 1) Dilate the coarse path by the radius in Chebyshev distance.
	dilated := make(map[dtw.Coord]struct{}, len(path)*(2*radius+1)*(2*radius+1))
	for _, c := range path {
		for a := -radius; a <= radius; a++ {
			for b := -radius; b <= radius; b++ {
				dilated[dtw.Coord{I: c.I + a, J: c.J + b}] = struct{}{}
			}
		}
	}

	// 2) Upsample every dilated cell to its four fine-resolution children.
	upsampled := make(map[dtw.Coord]struct{}, 4*len(dilated))
	for c := range dilated {
		upsampled[dtw.Coord{I: 2 * c.I, J: 2 * c.J}] = struct{}{}
		upsampled[dtw.Coord{I: 2 * c.I, J: 2*c.J + 1}] = struct{}{}
		upsampled[dtw.Coord{I: 2*c.I + 1, J: 2 * c.J}] = struct{}{}
		upsampled[dtw.Coord{I: 2*c.I + 1, J: 2*c.J + 1}] = struct{}{}
	}

	// 3) Extract the in-grid cells row by row, exploiting contiguity.
	window := make(dtw.Window, 0, len(upsampled))
	startJ := 0
	for i := 0; i < lenX; i++ {
		newStartJ := -1 // first matched column in this row, -1 = none yet
		for j := startJ; j < lenY; j++ {
			if _, ok := upsampled[dtw.Coord{I: i, J: j}]; ok {
				window = append(window, dtw.Coord{I: i, J: j})
				if newStartJ == -1 {
					newStartJ = j
				}
			} else if newStartJ != -1 {
				break // the contiguous run for this row has ended
			}
		}
		if newStartJ != -1 {
			startJ = newStartJ
		}
	}

	return window
}
