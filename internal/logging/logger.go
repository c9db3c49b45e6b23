package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Field represents a single structured logging key/value pair.
type Field struct {
	// Key is the field name.
	Key string
	// Value is the field value; the adapter dispatches on its dynamic type.
	Value any
}

// String creates a string-valued Field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int-valued Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64-valued Field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64-valued Field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates an error-valued Field with the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used throughout the application.
// Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs a message at debug level with optional structured fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional structured fields.
	Info(msg string, fields ...Field)
	// Error logs a message at error level, attaching err (which may be nil)
	// and optional structured fields.
	Error(msg string, err error, fields ...Field)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// Verify interface compliance.
var _ Logger = (*ZerologAdapter)(nil)

// NewZerologAdapter wraps an existing zerolog.Logger in the Logger interface.
//
// Parameters:
//   - zl: The zerolog logger to wrap.
//
// Returns:
//   - *ZerologAdapter: The adapter instance.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewLogger creates a Logger writing JSON lines to w, tagged with a component
// name. This is the standard constructor for per-component loggers.
//
// Parameters:
//   - w: The destination writer.
//   - component: The component name attached to every event.
//
// Returns:
//   - *ZerologAdapter: The adapter instance.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{zl: zl}
}

// NewDefaultLogger creates a Logger writing to stderr with the application
// component tag.
//
// Returns:
//   - *ZerologAdapter: The adapter instance.
func NewDefaultLogger() *ZerologAdapter {
	return NewLogger(os.Stderr, "fancyhello")
}

// Debug logs a message at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.log(a.zl.Debug(), fields).Msg(msg)
}

// Info logs a message at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.log(a.zl.Info(), fields).Msg(msg)
}

// Error logs a message at error level with an attached error value.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	a.log(a.zl.Error().Err(err), fields).Msg(msg)
}

// log applies structured fields to a zerolog event, dispatching on the
// dynamic type of each value.
func (a *ZerologAdapter) log(ev *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case int64:
			ev = ev.Int64(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case float64:
			ev = ev.Float64(f.Key, v)
		case bool:
			ev = ev.Bool(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	return ev
}

// NopLogger is a Logger that discards everything. Used in quiet mode and as a
// safe default in tests.
type NopLogger struct{}

// Verify interface compliance.
var _ Logger = NopLogger{}

// Debug discards the message.
func (NopLogger) Debug(string, ...Field) {}

// Info discards the message.
func (NopLogger) Info(string, ...Field) {}

// Error discards the message.
func (NopLogger) Error(string, error, ...Field) {}
