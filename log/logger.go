package log

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Uint64   = zap.Uint64
	Bool     = zap.Bool
	Float64  = zap.Float64
	Duration = zap.Duration
	Stringer = zap.Stringer
	Any      = zap.Any
	Error    = zap.Error
)

// Logger is a leveled logger writing through zap.
type Logger struct {
	zapLogger *zap.Logger
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(Nop())
}

// Default returns the package logger. It discards everything until SetDefault is called.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the package logger. A nil logger restores the no-op logger.
func SetDefault(l *Logger) {
	if l == nil {
		l = Nop()
	}
	defaultLogger.Store(l)
}

// Nop returns a logger that discards every message.
func Nop() *Logger {
	return &Logger{zapLogger: zap.NewNop()}
}

// New returns a console logger. Messages at Error and above go to stderr,
// everything else to stdout.
func New(level Level) *Logger {
	return NewWithWriters(level, os.Stdout, os.Stderr)
}

// NewWithWriters is New with explicit destinations.
func NewWithWriters(level Level, out, errOut io.Writer) *Logger {
	encoder := zapcore.NewConsoleEncoder(encoderConfig())
	enabled := level.zap()

	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= enabled && l < zapcore.ErrorLevel
	})
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= enabled && l >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(out), low),
		zapcore.NewCore(encoder, zapcore.AddSync(errOut), high),
	)
	return NewWithCore(core)
}

// NewWithCore wraps an existing zap core, typically an observer in tests.
func NewWithCore(core zapcore.Core) *Logger {
	return &Logger{zapLogger: zap.New(core)}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		NameKey:          "logger",
		ConsoleSeparator: " ",
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + t.Format("15:04:05.000") + "]")
		},
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("<" + fromZap(l).Tag() + ">")
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func (l *Logger) Log(level Level, msg string, fields ...Field) {
	if ce := l.zapLogger.Check(level.zap(), msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *Logger) Trace(msg string, fields ...Field) {
	l.Log(LevelTrace, msg, fields...)
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.zapLogger.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.zapLogger.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.zapLogger.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.zapLogger.Error(msg, fields...)
}

// Fatal logs at the highest level. It does not terminate the process.
func (l *Logger) Fatal(msg string, fields ...Field) {
	l.Log(LevelFatal, msg, fields...)
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l.zapLogger.Core().Enabled(level.zap())
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{zapLogger: l.zapLogger.With(fields...)}
}

// Named adds a component name to the logger.
func (l *Logger) Named(name string) *Logger {
	return &Logger{zapLogger: l.zapLogger.Named(name)}
}

func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// Zap exposes the underlying zap logger.
func (l *Logger) Zap() *zap.Logger {
	return l.zapLogger
}
