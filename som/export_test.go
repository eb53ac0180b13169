package som

// Exported aliases of private helpers for the som_test package.
var (
	SampleWithoutReplacement = sampleWithoutReplacement
	SquaredDistanceBounded   = squaredDistanceBounded
)
