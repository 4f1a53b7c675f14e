// Package log defines standard attribute keys for NumGo operations.
//
// Using these keys consistently enables structured log filtering across the
// library. The keys follow a hierarchical naming convention ("op.name",
// "shape.samples") so downstream log pipelines can group related fields.

package log

// Operation context.
const (
	// OperationKey names the numeric operation being performed.
	// Examples: "reshape", "dot", "svd", "least_squares"
	OperationKey = "op.name"

	// ComponentKey identifies the package performing the operation.
	// Examples: "tensor", "linalg"
	ComponentKey = "op.component"
)

// Shape attributes. These describe the dimensions of the data flowing
// through an operation and are the first thing to look at when debugging a
// shape mismatch.
const (
	// SamplesKey is the number of independent sequences in a batch.
	SamplesKey = "shape.samples"

	// TimestepsKey is the number of ordered observations per sequence.
	TimestepsKey = "shape.timesteps"

	// FeaturesKey is the number of scalar measurements per timestep.
	FeaturesKey = "shape.features"

	// RowsKey is the row count of a matrix operand.
	RowsKey = "shape.rows"

	// ColsKey is the column count of a matrix operand.
	ColsKey = "shape.cols"

	// SizeKey is the total element count of an operand.
	SizeKey = "shape.size"
)

// Numeric diagnostics.
const (
	// ConditionKey records the condition number reported by a solve or
	// inversion. Large values indicate precision loss.
	ConditionKey = "num.condition"

	// RankKey records the computed rank of a matrix.
	RankKey = "num.rank"
)

// Performance attributes.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context.
const (
	// ErrAttrKey is the key under which an error value is logged.
	ErrAttrKey = "error"

	// StacktraceAttrKey is the key under which a recovered stack trace is logged.
	StacktraceAttrKey = "stacktrace"
)
