package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redthing1/redlog/core"
	"github.com/redthing1/redlog/theme"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, core.InfoLevel, cfg.MinLevel())
	assert.Equal(t, theme.Default(), cfg.Theme())
}

func TestConfig_SetAndGet(t *testing.T) {
	cfg := NewConfig()

	cfg.SetMinLevel(core.TraceLevel)
	assert.Equal(t, core.TraceLevel, cfg.MinLevel())

	cfg.SetTheme(theme.Plain())
	assert.Equal(t, theme.Plain(), cfg.Theme())
}

func TestGlobalConfig_SaveRestore(t *testing.T) {
	origLevel := GetLevel()
	origTheme := GetTheme()
	defer func() {
		SetLevel(origLevel)
		SetTheme(origTheme)
	}()

	SetLevel(core.DebugLevel)
	assert.Equal(t, core.DebugLevel, GetLevel())

	SetTheme(theme.Plain())
	assert.Equal(t, theme.Plain(), GetTheme())

	assert.Same(t, globalConfig, GlobalConfig())
}

func TestConfig_ConcurrentAccess(t *testing.T) {
	cfg := NewConfig()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cfg.SetMinLevel(core.Level(n % int(core.NumLevels)))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l := cfg.MinLevel()
				assert.GreaterOrEqual(t, int8(l), int8(0))
				assert.Less(t, int8(l), int8(core.NumLevels))
			}
		}()
	}
	wg.Wait()
}
