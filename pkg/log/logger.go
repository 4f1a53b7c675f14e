package log

import (
	"context"
	"os"
	"sync"

	cockroacherrors "github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/numgo/pkg/errors"
)

var (
	loggerMutex   sync.RWMutex
	defaultLogger Logger = newZerologLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
)

// GetLogger returns the library-wide default logger.
func GetLogger() Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return defaultLogger
}

// SetLogger replaces the library-wide default logger. Useful for routing
// NumGo's output into an application's existing logging setup or a
// TestLogger in tests.
func SetLogger(l Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	defaultLogger = l
}

// SetLevel sets the minimum level emitted by the default zerolog-backed
// logger. It has no effect when a custom Logger has been installed.
func SetLevel(level Level) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	if zl, ok := defaultLogger.(*zerologLogger); ok {
		defaultLogger = &zerologLogger{zl: zl.zl.Level(toZerologLevel(level))}
	}
}

func init() {
	// Route library warnings through the structured logger.
	errors.SetZerologWarnFunc(func(warning error) {
		GetLogger().Warn("numgo warning", ErrAttrKey, warning)
	})
}

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger in the Logger interface.
func NewZerologLogger(zl zerolog.Logger) Logger {
	return newZerologLogger(zl)
}

func newZerologLogger(zl zerolog.Logger) *zerologLogger {
	return &zerologLogger{zl: zl}
}

func (z *zerologLogger) Debug(msg string, fields ...any) {
	z.emit(z.zl.Debug(), msg, fields)
}

func (z *zerologLogger) Info(msg string, fields ...any) {
	z.emit(z.zl.Info(), msg, fields)
}

func (z *zerologLogger) Warn(msg string, fields ...any) {
	z.emit(z.zl.Warn(), msg, fields)
}

func (z *zerologLogger) Error(msg string, fields ...any) {
	z.emit(z.zl.Error(), msg, fields)
}

func (z *zerologLogger) With(fields ...any) Logger {
	ctx := z.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{zl: ctx.Logger()}
}

func (z *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= z.zl.GetLevel()
}

// emit attaches fields to the event, giving error values and
// LogObjectMarshaler implementations their structured form.
func (z *zerologLogger) emit(e *zerolog.Event, msg string, fields []any) {
	i := 0
	// An error as the leading field gets the standard error/stacktrace keys.
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			attachError(e, err)
			i = 1
		}
	}
	for ; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		switch v := fields[i+1].(type) {
		case error:
			if key == ErrAttrKey {
				attachError(e, v)
			} else {
				e.AnErr(key, v)
			}
		case zerolog.LogObjectMarshaler:
			e.Object(key, v)
		default:
			e.Interface(key, v)
		}
	}
	e.Msg(msg)
}

func attachError(e *zerolog.Event, err error) {
	// Stack-trace wrappers hide the typed error, so search the chain for a
	// marshaler before falling back to the plain message.
	var marshaler zerolog.LogObjectMarshaler
	if cockroacherrors.As(err, &marshaler) {
		e.Object(ErrAttrKey, marshaler)
	} else {
		e.AnErr(ErrAttrKey, err)
	}
	if st := extractStacktrace(err); st != "" {
		e.Str(StacktraceAttrKey, st)
	}
}

// extractStacktrace pulls the stack trace recorded by cockroachdb/errors.
func extractStacktrace(err error) string {
	safeDetails := cockroacherrors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
