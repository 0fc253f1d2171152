package logger

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/prasetyowira/bsqr/constant"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is a no-op until Initialize runs, so library code may log freely
var logger = zap.NewNop()

// LoggerInfo contains structured logging information
type LoggerInfo struct {
	ContextFunction string
	Error           *CustomError
	Data            map[string]interface{}
}

// CustomError represents a structured error for logging
type CustomError struct {
	Code    string
	Message string
	Type    string
}

// Initialize sets up the logger with the default level of the environment
func Initialize(isProduction bool) {
	level := "debug"
	if isProduction {
		level = "info"
	}
	if err := InitializeLevel(level, isProduction); err != nil {
		// If we can't initialize the logger, we're in serious trouble
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// InitializeLevel sets up the logger at a named level (debug, info, warn, error)
func InitializeLevel(level string, isProduction bool) error {
	parsed, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        constant.LogTimeKey,
		LevelKey:       constant.LogLevelKey,
		NameKey:        constant.LogNameKey,
		CallerKey:      constant.LogCallerKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     constant.LogMessageKey,
		StacktraceKey:  constant.LogStacktraceKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parsed),
		Development:      !isProduction,
		Encoding:         constant.LogEncodingConsole,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{constant.LogOutputStderr},
		ErrorOutputPaths: []string{constant.LogOutputStderr},
	}
	if isProduction {
		config.Encoding = constant.LogEncodingJSON
		config.Sampling = &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		}
	}

	built, err := config.Build(zap.AddCallerSkip(2))
	if err != nil {
		return err
	}
	logger = built
	return nil
}

// SetLogger replaces the logger and returns a function restoring the previous one
func SetLogger(l *zap.Logger) (restore func()) {
	previous := logger
	logger = l
	return func() { logger = previous }
}

// Close ensures logger syncs before shutdown
func Close() {
	_ = logger.Sync()
}

// createFields creates zap fields with proper structure
func createFields(ctx context.Context, info LoggerInfo) []zap.Field {
	fields := []zap.Field{}

	if requestID := getRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String(constant.LogRequestIDKey, requestID))
	}

	if info.ContextFunction != "" {
		fields = append(fields, zap.String(constant.LogFunctionKey, info.ContextFunction))
	}

	if info.Error != nil {
		fields = append(fields,
			zap.String(constant.LogErrorCodeKey, info.Error.Code),
			zap.String(constant.LogErrorTypeKey, info.Error.Type),
			zap.String(constant.LogErrorMessageKey, info.Error.Message),
		)
	}

	// Sorted so entries are stable across runs
	keys := make([]string, 0, len(info.Data))
	for k := range info.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, zap.Any(k, info.Data[k]))
	}

	return fields
}

func write(ctx context.Context, level zapcore.Level, msg string, info LoggerInfo) {
	if ce := logger.Check(level, msg); ce != nil {
		ce.Write(createFields(ctx, info)...)
	}
}

// Debug logs a debug message
func Debug(msg string, info LoggerInfo) { write(nil, zapcore.DebugLevel, msg, info) }

// Info logs an info message
func Info(msg string, info LoggerInfo) { write(nil, zapcore.InfoLevel, msg, info) }

// Warn logs a warning message
func Warn(msg string, info LoggerInfo) { write(nil, zapcore.WarnLevel, msg, info) }

// Error logs an error message
func Error(msg string, info LoggerInfo) { write(nil, zapcore.ErrorLevel, msg, info) }

// Fatal logs a fatal message and exits
func Fatal(msg string, info LoggerInfo) { write(nil, zapcore.FatalLevel, msg, info) }

// CtxDebug logs a debug message with context
func CtxDebug(ctx context.Context, msg string, info LoggerInfo) {
	write(ctx, zapcore.DebugLevel, msg, info)
}

// CtxInfo logs an info message with context
func CtxInfo(ctx context.Context, msg string, info LoggerInfo) {
	write(ctx, zapcore.InfoLevel, msg, info)
}

// CtxWarn logs a warning message with context
func CtxWarn(ctx context.Context, msg string, info LoggerInfo) {
	write(ctx, zapcore.WarnLevel, msg, info)
}

// CtxError logs an error message with context
func CtxError(ctx context.Context, msg string, info LoggerInfo) {
	write(ctx, zapcore.ErrorLevel, msg, info)
}

// CtxFatal logs a fatal message with context and exits
func CtxFatal(ctx context.Context, msg string, info LoggerInfo) {
	write(ctx, zapcore.FatalLevel, msg, info)
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, requestID)
}

// RequestID returns the request ID stored in the context, if any
func RequestID(ctx context.Context) string {
	return getRequestID(ctx)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if reqID, ok := ctx.Value(constant.RequestIDKey).(string); ok {
		return reqID
	}

	return ""
}

// FormatMetadata formats map data into key=value • key=value format, keys sorted
func FormatMetadata(data map[string]interface{}) string {
	if len(data) == 0 {
		return ""
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, data[k]))
	}
	return strings.Join(parts, " • ")
}
