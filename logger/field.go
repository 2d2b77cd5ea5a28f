package logger

import "github.com/redthing1/redlog/core"

// Field re-exports core.Field for convenience.
type Field = core.Field

// F creates a field, converting the value to its display string:
//
//	log.Info("connected", logger.F("host", host), logger.F("port", 5432))
func F(key string, value any) Field {
	return core.F(key, value)
}
