package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redthing1/redlog/core"
)

func TestDefault(t *testing.T) {
	th := Default()
	assert.Equal(t, BrightMagenta, th.LevelColor(core.CriticalLevel))
	assert.Equal(t, Red, th.LevelColor(core.ErrorLevel))
	assert.Equal(t, Yellow, th.LevelColor(core.WarnLevel))
	assert.Equal(t, Green, th.LevelColor(core.InfoLevel))
	assert.Equal(t, BrightBlack, th.LevelColor(core.AnnoyingLevel))
	assert.Equal(t, None, th.LevelBGColor(core.ErrorLevel))
	assert.Equal(t, Cyan, th.SourceColor)
	assert.Equal(t, 12, th.SourceWidth)
	assert.Equal(t, 44, th.MessageFixedWidth)
	assert.True(t, th.PadLevelText)
}

func TestPlain(t *testing.T) {
	th := Plain()
	for l := core.Level(0); l < core.NumLevels; l++ {
		assert.Equal(t, None, th.LevelColor(l))
		assert.Equal(t, None, th.LevelBGColor(l))
	}
	assert.Equal(t, None, th.SourceColor)
	assert.Equal(t, None, th.MessageColor)
	assert.Equal(t, None, th.FieldKeyColor)
	assert.Equal(t, None, th.FieldValueColor)
	// Layout survives so colorless output stays aligned.
	assert.Equal(t, 12, th.SourceWidth)
	assert.Equal(t, 44, th.MessageFixedWidth)
}

func TestLevelColor_OutOfRange(t *testing.T) {
	th := Default()
	assert.Equal(t, White, th.LevelColor(core.Level(99)))
	assert.Equal(t, None, th.LevelBGColor(core.Level(99)))
	assert.Equal(t, White, th.LevelColor(core.Level(-1)))
}
