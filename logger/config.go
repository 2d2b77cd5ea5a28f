package logger

import (
	"sync"

	"github.com/redthing1/redlog/core"
	"github.com/redthing1/redlog/theme"
)

// Config holds the process-wide logging state: the minimum level and
// the active theme. All access goes through the mutex; the lock covers
// only the single field read or write, never formatting or I/O, so the
// emission hot path pays one uncontended lock per level check.
type Config struct {
	mu       sync.Mutex
	minLevel core.Level
	theme    theme.Theme
}

// NewConfig creates a Config with InfoLevel filtering and the default
// theme.
func NewConfig() *Config {
	return &Config{
		minLevel: core.InfoLevel,
		theme:    theme.Default(),
	}
}

// MinLevel returns the current minimum level.
func (c *Config) MinLevel() core.Level {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minLevel
}

// SetMinLevel sets the minimum level. Messages below it are filtered
// out.
func (c *Config) SetMinLevel(level core.Level) {
	c.mu.Lock()
	c.minLevel = level
	c.mu.Unlock()
}

// Theme returns the current theme.
func (c *Config) Theme() theme.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// SetTheme sets the theme used by default formatters.
func (c *Config) SetTheme(t theme.Theme) {
	c.mu.Lock()
	c.theme = t
	c.mu.Unlock()
}

// globalConfig is the process-wide Config read by every logger that
// was not bound to an explicit one.
var globalConfig = NewConfig()

// GlobalConfig returns the process-wide Config. Tests can read it to
// save and restore state around assertions.
func GlobalConfig() *Config {
	return globalConfig
}

// SetLevel sets the global minimum level.
func SetLevel(level core.Level) {
	globalConfig.SetMinLevel(level)
}

// GetLevel returns the global minimum level.
func GetLevel() core.Level {
	return globalConfig.MinLevel()
}

// SetTheme sets the global theme.
func SetTheme(t theme.Theme) {
	globalConfig.SetTheme(t)
}

// GetTheme returns the global theme.
func GetTheme() theme.Theme {
	return globalConfig.Theme()
}
