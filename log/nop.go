package log

import (
	"context"
	"time"
)

// levelOff sits above every real level so nothing is formatted.
const levelOff = LevelFatal + 1

type NopLogger struct {
	Logger
}

func NewNopLogger() Logger {
	n := &NopLogger{}
	n.Logger = newExportLogger(n)
	return n
}

func (l *NopLogger) level() Level {
	return levelOff
}

func (l *NopLogger) disableColor() bool {
	return true
}

func (l *NopLogger) print(Level, string) {}

func (l *NopLogger) printContext(context.Context, Level, string) {}

func (l *NopLogger) SetTimeFunc(func() time.Time) {}
