package log

import (
	"context"
	"io"

	saltLog "github.com/goto/salt/log"
	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Logger interface {

	// Debug level message with alternating key/value pairs
	// key should be string, value could be anything printable
	Debug(ctx context.Context, msg string, args ...interface{})

	// Info level message with alternating key/value pairs
	// key should be string, value could be anything printable
	Info(ctx context.Context, msg string, args ...interface{})

	// Warn level message with alternating key/value pairs
	// key should be string, value could be anything printable
	Warn(ctx context.Context, msg string, args ...interface{})

	// Error level message with alternating key/value pairs
	// key should be string, value could be anything printable
	Error(ctx context.Context, msg string, args ...interface{})

	// Fatal level message with alternating key/value pairs
	// key should be string, value could be anything printable
	Fatal(ctx context.Context, msg string, args ...interface{})

	// Level returns priority level for which this logger will filter logs
	Level() string

	// Writer used to print logs
	Writer() io.Writer
}

type contextKey string

// WithValue stores a string value in ctx under key. Loggers configured with
// key append it to every entry logged with the returned context.
func WithValue(ctx context.Context, key, value string) context.Context {
	return context.WithValue(ctx, contextKey(key), value)
}

type CtxLogger struct {
	log  saltLog.Logger
	keys []string
}

// NewCtxLoggerWithSaltLogger returns a logger that appends the configured
// context values to every entry, backed by the given salt logger
func NewCtxLoggerWithSaltLogger(log saltLog.Logger, ctxKeys []string) *CtxLogger {
	return &CtxLogger{log: log, keys: ctxKeys}
}

// NewCtxLogger returns a logrus backed logger that appends the configured
// context values to every entry
func NewCtxLogger(logLevel string, ctxKeys []string) *CtxLogger {
	return NewCtxLoggerWithFormat(logLevel, FormatText, ctxKeys)
}

func NewCtxLoggerWithFormat(logLevel, format string, ctxKeys []string) *CtxLogger {
	opts := []saltLog.Option{saltLog.LogrusWithLevel(logLevel)}
	if format == FormatJSON {
		opts = append(opts, saltLog.LogrusWithFormatter(&logrus.JSONFormatter{}))
	}
	return NewCtxLoggerWithSaltLogger(saltLog.NewLogrus(opts...), ctxKeys)
}

func (l *CtxLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log.Debug(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log.Info(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log.Warn(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log.Error(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Fatal(ctx context.Context, msg string, args ...interface{}) {
	l.log.Fatal(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Level() string {
	return l.log.Level()
}

func (l *CtxLogger) Writer() io.Writer {
	return l.log.Writer()
}

// addCtxToArgs appends the configured context values as key/value pairs
func (l *CtxLogger) addCtxToArgs(ctx context.Context, args []interface{}) []interface{} {
	if ctx == nil {
		return args
	}

	for _, key := range l.keys {
		if val, ok := ctx.Value(contextKey(key)).(string); ok {
			args = append(args, key, val)
		}
	}

	return args
}
