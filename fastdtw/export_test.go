package fastdtw

// Bridges for the external test package: resolution reduction and window
// expansion are implementation details, but their fixtures are pinned by
// tests.
var (
	ReduceByHalf = reduceByHalf
	ExpandWindow = expandWindow
)
