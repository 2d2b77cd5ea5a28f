package logger

import "github.com/redthing1/redlog/core"

// Full-name logging methods. Each gates on the level before doing any
// work.

// Critical logs a critical message.
func (l *Logger) Critical(msg string, fields ...core.Field) {
	if !l.enabled(core.CriticalLevel) {
		return
	}
	l.log(core.CriticalLevel, msg, fields)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !l.enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if !l.enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !l.enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Verbose logs a verbose message.
func (l *Logger) Verbose(msg string, fields ...core.Field) {
	if !l.enabled(core.VerboseLevel) {
		return
	}
	l.log(core.VerboseLevel, msg, fields)
}

// Trace logs a trace message.
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if !l.enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !l.enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Pedantic logs a pedantic message.
func (l *Logger) Pedantic(msg string, fields ...core.Field) {
	if !l.enabled(core.PedanticLevel) {
		return
	}
	l.log(core.PedanticLevel, msg, fields)
}

// Annoying logs a maximum-verbosity message.
func (l *Logger) Annoying(msg string, fields ...core.Field) {
	if !l.enabled(core.AnnoyingLevel) {
		return
	}
	l.log(core.AnnoyingLevel, msg, fields)
}

// Three-letter aliases, delegating to the full-name methods.

// Crt logs a critical message (short form).
func (l *Logger) Crt(msg string, fields ...core.Field) { l.Critical(msg, fields...) }

// Err logs an error message (short form).
func (l *Logger) Err(msg string, fields ...core.Field) { l.Error(msg, fields...) }

// Wrn logs a warning message (short form).
func (l *Logger) Wrn(msg string, fields ...core.Field) { l.Warn(msg, fields...) }

// Inf logs an informational message (short form).
func (l *Logger) Inf(msg string, fields ...core.Field) { l.Info(msg, fields...) }

// Vrb logs a verbose message (short form).
func (l *Logger) Vrb(msg string, fields ...core.Field) { l.Verbose(msg, fields...) }

// Trc logs a trace message (short form).
func (l *Logger) Trc(msg string, fields ...core.Field) { l.Trace(msg, fields...) }

// Dbg logs a debug message (short form).
func (l *Logger) Dbg(msg string, fields ...core.Field) { l.Debug(msg, fields...) }

// Ped logs a pedantic message (short form).
func (l *Logger) Ped(msg string, fields ...core.Field) { l.Pedantic(msg, fields...) }

// Ayg logs a maximum-verbosity message (short form).
func (l *Logger) Ayg(msg string, fields ...core.Field) { l.Annoying(msg, fields...) }

// Printf-style methods. The level gate runs before fmt interpolation,
// so filtered-out calls never materialize the message string.

// Criticalf logs a critical message with printf-style formatting.
func (l *Logger) Criticalf(format string, args ...any) {
	if !l.enabled(core.CriticalLevel) {
		return
	}
	l.logf(core.CriticalLevel, format, args)
}

// Errorf logs an error message with printf-style formatting.
func (l *Logger) Errorf(format string, args ...any) {
	if !l.enabled(core.ErrorLevel) {
		return
	}
	l.logf(core.ErrorLevel, format, args)
}

// Warnf logs a warning message with printf-style formatting.
func (l *Logger) Warnf(format string, args ...any) {
	if !l.enabled(core.WarnLevel) {
		return
	}
	l.logf(core.WarnLevel, format, args)
}

// Infof logs an informational message with printf-style formatting.
func (l *Logger) Infof(format string, args ...any) {
	if !l.enabled(core.InfoLevel) {
		return
	}
	l.logf(core.InfoLevel, format, args)
}

// Verbosef logs a verbose message with printf-style formatting.
func (l *Logger) Verbosef(format string, args ...any) {
	if !l.enabled(core.VerboseLevel) {
		return
	}
	l.logf(core.VerboseLevel, format, args)
}

// Tracef logs a trace message with printf-style formatting.
func (l *Logger) Tracef(format string, args ...any) {
	if !l.enabled(core.TraceLevel) {
		return
	}
	l.logf(core.TraceLevel, format, args)
}

// Debugf logs a debug message with printf-style formatting.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.enabled(core.DebugLevel) {
		return
	}
	l.logf(core.DebugLevel, format, args)
}

// Pedanticf logs a pedantic message with printf-style formatting.
func (l *Logger) Pedanticf(format string, args ...any) {
	if !l.enabled(core.PedanticLevel) {
		return
	}
	l.logf(core.PedanticLevel, format, args)
}

// Annoyingf logs a maximum-verbosity message with printf-style
// formatting.
func (l *Logger) Annoyingf(format string, args ...any) {
	if !l.enabled(core.AnnoyingLevel) {
		return
	}
	l.logf(core.AnnoyingLevel, format, args)
}

// Short-form printf aliases.

// Crtf logs a critical message with formatting (short form).
func (l *Logger) Crtf(format string, args ...any) { l.Criticalf(format, args...) }

// Errf logs an error message with formatting (short form).
func (l *Logger) Errf(format string, args ...any) { l.Errorf(format, args...) }

// Wrnf logs a warning message with formatting (short form).
func (l *Logger) Wrnf(format string, args ...any) { l.Warnf(format, args...) }

// Inff logs an informational message with formatting (short form).
func (l *Logger) Inff(format string, args ...any) { l.Infof(format, args...) }

// Vrbf logs a verbose message with formatting (short form).
func (l *Logger) Vrbf(format string, args ...any) { l.Verbosef(format, args...) }

// Trcf logs a trace message with formatting (short form).
func (l *Logger) Trcf(format string, args ...any) { l.Tracef(format, args...) }

// Dbgf logs a debug message with formatting (short form).
func (l *Logger) Dbgf(format string, args ...any) { l.Debugf(format, args...) }

// Pedf logs a pedantic message with formatting (short form).
func (l *Logger) Pedf(format string, args ...any) { l.Pedanticf(format, args...) }

// Aygf logs a maximum-verbosity message with formatting (short form).
func (l *Logger) Aygf(format string, args ...any) { l.Annoyingf(format, args...) }
