package dtw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlwarp/dtw"
)

// assertValidPath verifies the structural warping-path invariants: the path
// starts at {0,0}, ends at {n-1,m-1}, and every step advances by exactly
// one of {0,+1}, {+1,0}, {+1,+1}.
func assertValidPath(t *testing.T, path []dtw.Coord, n, m int) {
	t.Helper()

	require.NotEmpty(t, path, "path must not be empty")
	assert.Equal(t, dtw.Coord{I: 0, J: 0}, path[0], "path must start at the origin")
	assert.Equal(t, dtw.Coord{I: n - 1, J: m - 1}, path[len(path)-1], "path must end at the far corner")

	for k := 1; k < len(path); k++ {
		di := path[k].I - path[k-1].I
		dj := path[k].J - path[k-1].J
		valid := (di == 0 && dj == 1) || (di == 1 && dj == 0) || (di == 1 && dj == 1)
		assert.True(t, valid, "step %d: (%d,%d) is not a unit monotone move", k, di, dj)
	}
}

// TestDTW_EmptyInput verifies that DTW rejects empty sequences on either
// side with ErrEmptyInput.
func TestDTW_EmptyInput(t *testing.T) {
	_, _, err := dtw.DTW(dtw.Sequence{}, dtw.Scalars([]float64{1, 2, 3}), nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first sequence should error")

	_, _, err = dtw.DTW(dtw.Scalars([]float64{1, 2, 3}), dtw.Sequence{}, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second sequence should error")
}

// TestDTW_DimensionMismatch verifies that vector-width disagreements are
// rejected before any distance is computed.
func TestDTW_DimensionMismatch(t *testing.T) {
	// Widths differ between the two sequences.
	x := dtw.Sequence{{1, 2}, {3, 4}}
	y := dtw.Sequence{{1}, {2}}
	_, _, err := dtw.DTW(x, y, nil)
	assert.ErrorIs(t, err, dtw.ErrDimensionMismatch, "cross-sequence width mismatch must error")

	// A sequence is ragged within itself.
	ragged := dtw.Sequence{{1, 2}, {3}}
	_, _, err = dtw.DTW(ragged, dtw.Sequence{{1, 2}}, nil)
	assert.ErrorIs(t, err, dtw.ErrDimensionMismatch, "ragged sequence must error")
}

// TestDTW_IdenticalSequences verifies zero cost and the pure diagonal path
// when both inputs are the same strictly varying sequence.
func TestDTW_IdenticalSequences(t *testing.T) {
	x := dtw.Scalars([]float64{1, 2, 3, 4})

	cost, path, err := dtw.DTW(x, x, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost, "identical sequences must align at zero cost")

	want := []dtw.Coord{{I: 0, J: 0}, {I: 1, J: 1}, {I: 2, J: 2}, {I: 3, J: 3}}
	assert.Equal(t, want, path, "identical sequences must align along the diagonal")
}

// TestDTW_KnownAlignment pins the canonical fixture: x=[1,2,3,4,5] against
// y=[2,3,4] costs exactly 2 with a fully determined path. The path shape
// also locks in the up/left/diagonal tie-break order.
func TestDTW_KnownAlignment(t *testing.T) {
	x := dtw.Scalars([]float64{1, 2, 3, 4, 5})
	y := dtw.Scalars([]float64{2, 3, 4})

	cost, path, err := dtw.DTW(x, y, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cost)

	want := []dtw.Coord{{I: 0, J: 0}, {I: 1, J: 0}, {I: 2, J: 1}, {I: 3, J: 2}, {I: 4, J: 2}}
	assert.Equal(t, want, path)
}

// TestDTW_PathInvariants checks the structural path properties on inputs of
// assorted shapes, including extreme length ratios.
func TestDTW_PathInvariants(t *testing.T) {
	cases := []struct {
		name string
		x, y []float64
	}{
		{"longer_x", []float64{0, 3, 1, 4, 1, 5, 9, 2, 6}, []float64{2, 7, 1}},
		{"longer_y", []float64{8, 1}, []float64{2, 8, 1, 8, 2, 8}},
		{"single_vs_many", []float64{5}, []float64{1, 2, 3, 4}},
		{"single_vs_single", []float64{2}, []float64{9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, path, err := dtw.DTW(dtw.Scalars(tc.x), dtw.Scalars(tc.y), nil)
			require.NoError(t, err)
			assertValidPath(t, path, len(tc.x), len(tc.y))
		})
	}
}

// TestDTW_EuclideanVectors verifies that a p=2 norm distance on 2-D vector
// sequences equals the Euclidean distance between the matched points.
func TestDTW_EuclideanVectors(t *testing.T) {
	euclid, err := dtw.PNormDistance(2)
	require.NoError(t, err)

	// Single matched pair: distance is exactly the 3-4-5 hypotenuse.
	x := dtw.Sequence{{0, 0}}
	y := dtw.Sequence{{3, 4}}
	cost, path, err := dtw.DTW(x, y, &dtw.Options{Dist: euclid})
	require.NoError(t, err)
	assert.Equal(t, 5.0, cost)
	assert.Equal(t, []dtw.Coord{{I: 0, J: 0}}, path)

	// Diagonal alignment of equal-length sequences: cost is the sum of the
	// per-point Euclidean distances.
	x = dtw.Sequence{{0, 0}, {10, 10}}
	y = dtw.Sequence{{0, 1}, {16, 18}}
	cost, _, err = dtw.DTW(x, y, &dtw.Options{Dist: euclid})
	require.NoError(t, err)
	assert.InDelta(t, 1.0+10.0, cost, 1e-12, "per-point hypotenuses 1 and 10 must add up")
}

// TestDTW_CustomDistance verifies that a caller-supplied DistanceFunc is
// used verbatim.
func TestDTW_CustomDistance(t *testing.T) {
	squared := func(a, b []float64) float64 {
		d := a[0] - b[0]

		return d * d
	}

	x := dtw.Scalars([]float64{0, 2})
	y := dtw.Scalars([]float64{0, 5})
	cost, _, err := dtw.DTW(x, y, &dtw.Options{Dist: squared})
	require.NoError(t, err)
	assert.Equal(t, 9.0, cost, "squared-difference cost of matching 2 to 5")
}

// TestDTW_ExplicitWindow verifies that a window covering the whole grid
// reproduces the full-grid result exactly.
func TestDTW_ExplicitWindow(t *testing.T) {
	x := dtw.Scalars([]float64{1, 2, 3, 4, 5})
	y := dtw.Scalars([]float64{2, 3, 4})

	full := make(dtw.Window, 0, len(x)*len(y))
	for i := 0; i < len(x); i++ {
		for j := 0; j < len(y); j++ {
			full = append(full, dtw.Coord{I: i, J: j})
		}
	}

	wantCost, wantPath, err := dtw.DTW(x, y, nil)
	require.NoError(t, err)

	cost, path, err := dtw.DTW(x, y, &dtw.Options{Window: full})
	require.NoError(t, err)
	assert.Equal(t, wantCost, cost)
	assert.Equal(t, wantPath, path)
}

// TestDTW_WindowInfeasible verifies that a window which never reaches the
// far corner yields ErrWindowInfeasible instead of a bogus result.
func TestDTW_WindowInfeasible(t *testing.T) {
	x := dtw.Scalars([]float64{1, 2})
	y := dtw.Scalars([]float64{1, 2})

	// Only the origin cell is permitted; (1,1) is unreachable.
	opts := &dtw.Options{Window: dtw.Window{{I: 0, J: 0}}}
	_, _, err := dtw.DTW(x, y, opts)
	assert.ErrorIs(t, err, dtw.ErrWindowInfeasible)

	// The corner is present but disconnected from the origin.
	opts = &dtw.Options{Window: dtw.Window{{I: 0, J: 0}, {I: 1, J: 1}}}
	_, _, err = dtw.DTW(x, y, opts)
	assert.NoError(t, err, "diagonal step connects the corners")

	opts = &dtw.Options{Window: dtw.Window{{I: 1, J: 1}}}
	_, _, err = dtw.DTW(x, y, opts)
	assert.ErrorIs(t, err, dtw.ErrWindowInfeasible, "corner without origin has no finite predecessor chain")
}

// TestDTW_DuplicateWindowCells verifies that duplicated window cells are
// harmless: recomputation yields the same table entry.
func TestDTW_DuplicateWindowCells(t *testing.T) {
	x := dtw.Scalars([]float64{1, 2, 3})
	y := dtw.Scalars([]float64{1, 3})

	var window dtw.Window
	for i := 0; i < len(x); i++ {
		for j := 0; j < len(y); j++ {
			window = append(window, dtw.Coord{I: i, J: j}, dtw.Coord{I: i, J: j})
		}
	}

	wantCost, wantPath, err := dtw.DTW(x, y, nil)
	require.NoError(t, err)

	cost, path, err := dtw.DTW(x, y, &dtw.Options{Window: window})
	require.NoError(t, err)
	assert.Equal(t, wantCost, cost)
	assert.Equal(t, wantPath, path)
}
