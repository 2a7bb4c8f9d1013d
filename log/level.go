package log

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap/zapcore"
)

type Level int8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelTags = [...]string{
	LevelTrace: "TRC",
	LevelDebug: "DBG",
	LevelInfo:  "INF",
	LevelWarn:  "WRN",
	LevelError: "ERR",
	LevelFatal: "FTL",
}

var levelNames = [...]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelFatal: "fatal",
}

func (l Level) String() string {
	if l < LevelTrace || l > LevelFatal {
		return "unknown"
	}
	return levelNames[l]
}

// Tag returns the three letter level marker used by the console encoder.
func (l Level) Tag() string {
	if l < LevelTrace || l > LevelFatal {
		return "???"
	}
	return levelTags[l]
}

// ParseLevel converts a level name such as "info" into a Level.
func ParseLevel(name string) (Level, error) {
	for lvl, candidate := range levelNames {
		if strings.EqualFold(name, candidate) {
			return Level(lvl), nil
		}
	}
	return LevelInfo, eris.Errorf("unknown log level %q", name)
}

// zap has no trace level and its fatal level exits the process, so Trace sits
// one step below Debug and Fatal is reported as DPanic, which only panics in
// development loggers.
const zapTraceLevel = zapcore.DebugLevel - 1

func (l Level) zap() zapcore.Level {
	switch l {
	case LevelTrace:
		return zapTraceLevel
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

func fromZap(level zapcore.Level) Level {
	switch {
	case level <= zapTraceLevel:
		return LevelTrace
	case level == zapcore.DebugLevel:
		return LevelDebug
	case level == zapcore.InfoLevel:
		return LevelInfo
	case level == zapcore.WarnLevel:
		return LevelWarn
	case level == zapcore.ErrorLevel:
		return LevelError
	default:
		return LevelFatal
	}
}
