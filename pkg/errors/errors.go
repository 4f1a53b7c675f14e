// Package errors provides the error handling and warning system used across
// NumGo. Errors are typed by failure class (shape, dimension, singularity,
// domain) so callers can branch on them, carry stack traces from
// cockroachdb/errors, and marshal themselves into zerolog events.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to the standard logger.
		log.Printf("NumGo-Warning: %v\n", w)
	}
	// zerolog sink, registered lazily by pkg/log to avoid an import cycle.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the warning handler for the whole library.
// It controls how non-fatal conditions such as IllConditionedWarning are
// reported.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc registers a zerolog-backed warning sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. When a zerolog sink is registered it receives the
// warning as a structured event; otherwise the plain handler is used.
// The handler runs outside the registry lock, so it may itself call
// SetWarningHandler or Warn.
func Warn(w error) {
	warningMutex.Lock()
	sink := zerologWarnFunc
	handler := warningHandler
	warningMutex.Unlock()

	if sink != nil {
		sink(w)
		return
	}

	if handler != nil {
		handler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// IllConditionedWarning reports that a solve or inversion succeeded but the
// input matrix is badly conditioned, so the result may have lost precision.
type IllConditionedWarning struct {
	Op   string
	Cond float64
}

func (w *IllConditionedWarning) Error() string {
	return fmt.Sprintf("%s: matrix is ill-conditioned (condition number %.6g); result may be inaccurate", w.Op, w.Cond)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *IllConditionedWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Float64("condition_number", w.Cond).
		Str("type", "IllConditionedWarning")
}

// NewIllConditionedWarning creates a new IllConditionedWarning.
func NewIllConditionedWarning(op string, cond float64) *IllConditionedWarning {
	return &IllConditionedWarning{Op: op, Cond: cond}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// ShapeMismatchError reports that a reshape target is incompatible with the
// source data: the product of the requested dimensions does not equal the
// element count, or a 2-D input is not rectangular.
type ShapeMismatchError struct {
	Op   string
	Dims []int // requested (samples, timesteps, features) or observed row widths
	Size int   // source element count
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("numgo: %s: cannot arrange %d elements into shape %v", e.Op, e.Size, e.Dims)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ShapeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Ints("dims", e.Dims).
		Int("size", e.Size).
		Str("type", "ShapeMismatchError")
}

// NewShapeMismatchError creates a ShapeMismatchError with a stack trace.
func NewShapeMismatchError(op string, dims []int, size int) error {
	err := &ShapeMismatchError{Op: op, Dims: dims, Size: size}
	return errors.WithStack(err)
}

// DimensionError reports incompatible operand dimensions, for example two
// matrices of different shapes passed to an elementwise operation or a dot
// product whose inner dimensions disagree.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("numgo: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// SingularMatrixError reports an attempt to invert or solve with a matrix
// that is singular to working precision.
type SingularMatrixError struct {
	Op string
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("numgo: %s: matrix is singular", e.Op)
}

func (e *SingularMatrixError) Unwrap() error {
	return ErrSingularMatrix
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *SingularMatrixError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("type", "SingularMatrixError")
}

// NewSingularMatrixError creates a SingularMatrixError with a stack trace.
// The result matches ErrSingularMatrix under errors.Is.
func NewSingularMatrixError(op string) error {
	err := &SingularMatrixError{Op: op}
	return errors.WithStack(err)
}

// DomainError reports an operation applied outside its mathematical domain,
// such as an eigendecomposition of a non-square matrix or the sample variance
// of fewer than two values.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("numgo: %s: %s", e.Op, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DomainError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "DomainError")
}

// NewDomainError creates a DomainError with a stack trace.
func NewDomainError(op, reason string) error {
	err := &DomainError{Op: op, Reason: reason}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is invalid for the operation,
// such as an empty slice or a non-positive size.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("numgo: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Numerical instability
//
// ===========================================================================

// NumericalInstabilityError reports NaN or Inf values detected during a
// numeric operation.
type NumericalInstabilityError struct {
	Operation string
	Values    []float64 // offending values, truncated for display
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("numgo: numerical instability detected in %s. Values: [%s]", e.Operation, valStr)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a
// stack trace.
func NewNumericalInstabilityError(operation string, values []float64) error {
	err := &NumericalInstabilityError{Operation: operation, Values: values}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

// ErrSingularMatrix is the sentinel matched by SingularMatrixError.
var ErrSingularMatrix = New("singular matrix")
