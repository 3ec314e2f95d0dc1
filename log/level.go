package log

import (
	"fmt"

	"github.com/logrusorgru/aurora/v4"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug", "Debug":
		return LevelDebug, nil
	case "info", "Info", "":
		return LevelInfo, nil
	case "warn", "Warn", "warning", "Warning":
		return LevelWarn, nil
	case "error", "Error":
		return LevelError, nil
	case "fatal", "Fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "Debug"
	case LevelInfo:
		return "Info"
	case LevelWarn:
		return "Warn"
	case LevelError:
		return "Error"
	case LevelFatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

func (l Level) ColorString() string {
	switch l {
	case LevelDebug:
		return aurora.Blue("Debug").String()
	case LevelInfo:
		return aurora.Green("Info").String()
	case LevelWarn:
		return aurora.Yellow("Warn").String()
	case LevelError:
		return aurora.Red("Error").String()
	case LevelFatal:
		return aurora.Magenta("Fatal").String()
	default:
		return "Unknown"
	}
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}
