package log

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	DebugContext(ctx context.Context, args ...any)
	InfoContext(ctx context.Context, args ...any)
	WarnContext(ctx context.Context, args ...any)
	ErrorContext(ctx context.Context, args ...any)
	DebugfContext(ctx context.Context, format string, args ...any)
	InfofContext(ctx context.Context, format string, args ...any)
	WarnfContext(ctx context.Context, format string, args ...any)
	ErrorfContext(ctx context.Context, format string, args ...any)

	basicLogger() basicLogger
}

type SetTimeFuncInterface interface {
	SetTimeFunc(func() time.Time)
}

// basicLogger is what a concrete logger implements; ExportLogger turns it into a Logger.
type basicLogger interface {
	level() Level
	disableColor() bool

	print(level Level, msg string)
	printContext(ctx context.Context, level Level, msg string)
}

var _ Logger = (*ExportLogger)(nil)

type ExportLogger struct {
	logger basicLogger
}

func newExportLogger(logger basicLogger) Logger {
	return &ExportLogger{
		logger: logger,
	}
}

func (l *ExportLogger) basicLogger() basicLogger {
	return l.logger
}

// enabled skips formatting for lines below the logger level.
func (l *ExportLogger) enabled(level Level) bool {
	return level >= l.logger.level()
}

func (l *ExportLogger) log(level Level, args []any) {
	if l.enabled(level) {
		l.logger.print(level, fmt.Sprint(args...))
	}
}

func (l *ExportLogger) logf(level Level, format string, args []any) {
	if l.enabled(level) {
		l.logger.print(level, fmt.Sprintf(format, args...))
	}
}

func (l *ExportLogger) logContext(ctx context.Context, level Level, args []any) {
	if l.enabled(level) {
		l.logger.printContext(ctx, level, fmt.Sprint(args...))
	}
}

func (l *ExportLogger) logfContext(ctx context.Context, level Level, format string, args []any) {
	if l.enabled(level) {
		l.logger.printContext(ctx, level, fmt.Sprintf(format, args...))
	}
}

func (l *ExportLogger) Debug(args ...any) { l.log(LevelDebug, args) }
func (l *ExportLogger) Info(args ...any)  { l.log(LevelInfo, args) }
func (l *ExportLogger) Warn(args ...any)  { l.log(LevelWarn, args) }
func (l *ExportLogger) Error(args ...any) { l.log(LevelError, args) }
func (l *ExportLogger) Fatal(args ...any) { l.log(LevelFatal, args) }

func (l *ExportLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args) }
func (l *ExportLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args) }
func (l *ExportLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args) }
func (l *ExportLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args) }
func (l *ExportLogger) Fatalf(format string, args ...any) { l.logf(LevelFatal, format, args) }

func (l *ExportLogger) DebugContext(ctx context.Context, args ...any) {
	l.logContext(ctx, LevelDebug, args)
}

func (l *ExportLogger) InfoContext(ctx context.Context, args ...any) {
	l.logContext(ctx, LevelInfo, args)
}

func (l *ExportLogger) WarnContext(ctx context.Context, args ...any) {
	l.logContext(ctx, LevelWarn, args)
}

func (l *ExportLogger) ErrorContext(ctx context.Context, args ...any) {
	l.logContext(ctx, LevelError, args)
}

func (l *ExportLogger) DebugfContext(ctx context.Context, format string, args ...any) {
	l.logfContext(ctx, LevelDebug, format, args)
}

func (l *ExportLogger) InfofContext(ctx context.Context, format string, args ...any) {
	l.logfContext(ctx, LevelInfo, format, args)
}

func (l *ExportLogger) WarnfContext(ctx context.Context, format string, args ...any) {
	l.logfContext(ctx, LevelWarn, format, args)
}

func (l *ExportLogger) ErrorfContext(ctx context.Context, format string, args ...any) {
	l.logfContext(ctx, LevelError, format, args)
}
