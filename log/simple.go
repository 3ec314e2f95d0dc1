package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rnetx/judge/adapter"
)

// DefaultLogger writes to stderr so solver output on stdout stays clean.
var DefaultLogger Logger

func init() {
	DefaultLogger = NewSimpleLogger(os.Stderr, LevelInfo, false, false)
}

var (
	_ basicLogger = (*SimpleLogger)(nil)
	_ Logger      = (*SimpleLogger)(nil)
)

type SimpleLogger struct {
	writer           io.Writer
	_level           Level
	disableTimestamp bool
	_disableColor    bool
	timeFunc         func() time.Time
	Logger
}

func NewSimpleLogger(writer io.Writer, level Level, disableTimestamp bool, disableColor bool) Logger {
	s := &SimpleLogger{
		writer:           writer,
		_level:           level,
		disableTimestamp: disableTimestamp,
		_disableColor:    disableColor,
		timeFunc:         time.Now,
	}
	s.Logger = newExportLogger(s)
	return s
}

func (l *SimpleLogger) SetTimeFunc(f func() time.Time) {
	l.timeFunc = f
}

func (l *SimpleLogger) level() Level {
	return l._level
}

func (l *SimpleLogger) disableColor() bool {
	return l._disableColor
}

func (l *SimpleLogger) header(level Level) string {
	var b strings.Builder
	if !l.disableTimestamp {
		fmt.Fprintf(&b, "[%s] ", l.timeFunc().Format(time.DateTime))
	}
	if !l._disableColor {
		fmt.Fprintf(&b, "[%s] ", level.ColorString())
	} else {
		fmt.Fprintf(&b, "[%s] ", level.String())
	}
	return b.String()
}

func (l *SimpleLogger) print(level Level, msg string) {
	if level < l._level {
		return
	}
	fmt.Fprintln(l.writer, l.header(level)+msg)
}

func (l *SimpleLogger) printContext(ctx context.Context, level Level, msg string) {
	if level < l._level {
		return
	}
	fmt.Fprintln(l.writer, l.header(level)+contextPrefix(ctx, l._disableColor)+msg)
}

func contextPrefix(ctx context.Context, disableColor bool) string {
	logContext := adapter.LoadLogContext(ctx)
	if logContext == nil {
		return ""
	}
	s := fmt.Sprintf("%d %dms", logContext.ID(), logContext.Duration().Milliseconds())
	if !disableColor {
		return fmt.Sprintf("[%s] ", aurora.Colorize(s, logContext.Color()))
	}
	return fmt.Sprintf("[%s] ", s)
}
