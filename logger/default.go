package logger

import (
	"sync"

	"github.com/redthing1/redlog/core"
)

var (
	defaultLogger = GetLogger("")
	defaultMu     sync.RWMutex
)

// Default returns the default logger used by the package-level
// functions.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the default logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Package-level convenience functions delegating to the default
// logger.

// Critical logs a critical message using the default logger.
func Critical(msg string, fields ...core.Field) { Default().Critical(msg, fields...) }

// Error logs an error message using the default logger.
func Error(msg string, fields ...core.Field) { Default().Error(msg, fields...) }

// Warn logs a warning message using the default logger.
func Warn(msg string, fields ...core.Field) { Default().Warn(msg, fields...) }

// Info logs an informational message using the default logger.
func Info(msg string, fields ...core.Field) { Default().Info(msg, fields...) }

// Verbose logs a verbose message using the default logger.
func Verbose(msg string, fields ...core.Field) { Default().Verbose(msg, fields...) }

// Trace logs a trace message using the default logger.
func Trace(msg string, fields ...core.Field) { Default().Trace(msg, fields...) }

// Debug logs a debug message using the default logger.
func Debug(msg string, fields ...core.Field) { Default().Debug(msg, fields...) }

// Pedantic logs a pedantic message using the default logger.
func Pedantic(msg string, fields ...core.Field) { Default().Pedantic(msg, fields...) }

// Annoying logs a maximum-verbosity message using the default logger.
func Annoying(msg string, fields ...core.Field) { Default().Annoying(msg, fields...) }

// Criticalf logs a formatted critical message using the default logger.
func Criticalf(format string, args ...any) { Default().Criticalf(format, args...) }

// Errorf logs a formatted error message using the default logger.
func Errorf(format string, args ...any) { Default().Errorf(format, args...) }

// Warnf logs a formatted warning message using the default logger.
func Warnf(format string, args ...any) { Default().Warnf(format, args...) }

// Infof logs a formatted informational message using the default logger.
func Infof(format string, args ...any) { Default().Infof(format, args...) }

// Verbosef logs a formatted verbose message using the default logger.
func Verbosef(format string, args ...any) { Default().Verbosef(format, args...) }

// Tracef logs a formatted trace message using the default logger.
func Tracef(format string, args ...any) { Default().Tracef(format, args...) }

// Debugf logs a formatted debug message using the default logger.
func Debugf(format string, args ...any) { Default().Debugf(format, args...) }

// Pedanticf logs a formatted pedantic message using the default logger.
func Pedanticf(format string, args ...any) { Default().Pedanticf(format, args...) }

// Annoyingf logs a formatted maximum-verbosity message using the
// default logger.
func Annoyingf(format string, args ...any) { Default().Annoyingf(format, args...) }
