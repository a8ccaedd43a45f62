// Package logging wraps go.uber.org/zap into the small leveled,
// structured logger used by objfile's line warnings and the CLI's
// verbose run narration. No package implementing the codec itself
// (corner, halfedge, compress, decompress, history, sidetable) depends
// on this package.
package logging

import "go.uber.org/zap"

// Logger is a thin facade over *zap.SugaredLogger, kept narrow so
// callers depend on a handful of named methods rather than the full
// zap surface.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a Logger. verbose enables debug-level output; otherwise
// only info-and-above is emitted.
func New(verbose bool) (*Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: z.Sugar()}, nil
}

// Noop returns a Logger that discards everything, for tests and library
// callers that don't want CLI-style console output.
func Noop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

func (l *Logger) Debugw(msg string, kv ...interface{}) { l.sugar.Debugw(msg, kv...) }
func (l *Logger) Infow(msg string, kv ...interface{})  { l.sugar.Infow(msg, kv...) }
func (l *Logger) Warnw(msg string, kv ...interface{})  { l.sugar.Warnw(msg, kv...) }
func (l *Logger) Errorw(msg string, kv ...interface{}) { l.sugar.Errorw(msg, kv...) }

// Sync flushes buffered log entries; call before process exit.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
