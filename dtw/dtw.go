package dtw

import "math"

// cell is one entry of the sparse cost table: the cumulative cost of the
// cheapest monotone path reaching a 1-based grid cell, plus the predecessor
// cell that path came from. Cells absent from the table read as +∞.
type cell struct {
	cost float64
	prev Coord
}

// DTW computes the exact Dynamic Time Warping alignment between x and y.
// Returns (cost, path, error); the path starts at {0,0}, ends at
// {len(x)-1, len(y)-1}, and each step advances by exactly one of
// {0,+1}, {+1,0}, {+1,+1}.
//
// opts may be nil, meaning DefaultOptions: the full n×m grid and
// AbsDistance. An explicit Options.Window restricts the dynamic program to
// the listed cells; see the Window type for its ordering contract. Window
// cells must lie within the grid — out-of-range cells panic.
//
// Preconditions (checked before any distance is evaluated):
//  1. Both sequences are non-empty (ErrEmptyInput).
//  2. All elements of both sequences share one width (ErrDimensionMismatch).
//
// If the window contains no monotone chain from (0,0) to (n-1,m-1), the
// target cell stays at +∞ and DTW returns ErrWindowInfeasible.
//
// Ties between the three predecessors resolve in the fixed order
// up (i-1,j), left (i,j-1), diagonal (i-1,j-1); this pins down which of
// several equal-cost paths is returned.
//
// Example:
//
//	cost, path, err := dtw.DTW(dtw.Scalars(a), dtw.Scalars(b), nil)
func DTW(x, y Sequence, opts *Options) (float64, []Coord, error) {
	// 1) Validate inputs before touching any element.
	if err := Validate(x, y); err != nil {
		return 0, nil, err
	}

	// 2) Apply options or defaults.
	dist := DistanceFunc(AbsDistance)
	var window Window
	if opts != nil {
		if opts.Dist != nil {
			dist = opts.Dist
		}
		window = opts.Window
	}

	n, m := len(x), len(y)

	// 3) Seed the table: the boundary origin costs 0 and is its own
	//    predecessor, which terminates backtracking.
	size := len(window) + 1
	if window == nil {
		size = n*m + 1
	}
	table := make(map[Coord]cell, size)
	table[Coord{}] = cell{cost: 0, prev: Coord{}}

	// 4) Fill cells in window order — row-major over the full grid when no
	//    window is given. Each cell depends only on cells at smaller or
	//    equal indices, so this order computes predecessors first.
	if window == nil {
		for i := 1; i <= n; i++ {
			for j := 1; j <= m; j++ {
				relax(table, x, y, dist, i, j)
			}
		}
	} else {
		for _, c := range window {
			relax(table, x, y, dist, c.I+1, c.J+1) // shift to 1-based
		}
	}

	// 5) Extract the total cost. A missing or infinite target means the
	//    window never connected the corners.
	goal, ok := table[Coord{I: n, J: m}]
	if !ok || math.IsInf(goal.cost, 1) {
		return 0, nil, ErrWindowInfeasible
	}

	// 6) Walk predecessor links from (n,m) back to (0,0), collecting
	//    0-based cells, then reverse in place to get increasing order.
	path := make([]Coord, 0, n+m)
	for i, j := n, m; i != 0 || j != 0; {
		path = append(path, Coord{I: i - 1, J: j - 1})
		p := table[Coord{I: i, J: j}].prev
		i, j = p.I, p.J
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return goal.cost, path, nil
}

// relax computes table[i,j] (1-based) from its three predecessors:
// up (i-1,j), left (i,j-1), diagonal (i-1,j-1), preferred in that order on
// ties. When every predecessor is absent the cell is stored at +∞, keeping
// it ineligible as a predecessor itself.
func relax(table map[Coord]cell, x, y Sequence, dist DistanceFunc, i, j int) {
	d := dist(x[i-1], y[j-1])

	best := costAt(table, i-1, j)
	prev := Coord{I: i - 1, J: j}
	if c := costAt(table, i, j-1); c < best {
		best, prev = c, Coord{I: i, J: j - 1}
	}
	if c := costAt(table, i-1, j-1); c < best {
		best, prev = c, Coord{I: i - 1, J: j - 1}
	}

	table[Coord{I: i, J: j}] = cell{cost: best + d, prev: prev}
}

// costAt reads the cumulative cost at 1-based (i,j), defaulting to +∞ for
// cells outside the table.
func costAt(table map[Coord]cell, i, j int) float64 {
	if c, ok := table[Coord{I: i, J: j}]; ok {
		return c.cost
	}

	return math.Inf(1)
}
