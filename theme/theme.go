package theme

import "github.com/redthing1/redlog/core"

// Theme configures colors and layout for formatters.
//
// LevelColors and LevelBGColors are indexed by level ordinal. The
// layout parameters control the Default formatter's column alignment:
// SourceWidth is the fixed width of the bracketed source tag,
// MessageFixedWidth the fixed width of the message column, and
// PadLevelText pads level tags to a uniform width.
type Theme struct {
	LevelColors   [core.NumLevels]Color
	LevelBGColors [core.NumLevels]Color

	SourceColor     Color
	SourceBGColor   Color
	MessageColor    Color
	FieldKeyColor   Color
	FieldValueColor Color

	SourceWidth       int
	MessageFixedWidth int
	PadLevelText      bool
}

// LevelColor returns the foreground color for a level, defaulting to
// White for out-of-range values.
func (t Theme) LevelColor(l core.Level) Color {
	if l < 0 || l >= core.NumLevels {
		return White
	}
	return t.LevelColors[l]
}

// LevelBGColor returns the background color for a level, defaulting to
// None for out-of-range values.
func (t Theme) LevelBGColor(l core.Level) Color {
	if l < 0 || l >= core.NumLevels {
		return None
	}
	return t.LevelBGColors[l]
}

// Default returns the full-color theme.
func Default() Theme {
	return Theme{
		LevelColors: [core.NumLevels]Color{
			core.CriticalLevel: BrightMagenta,
			core.ErrorLevel:    Red,
			core.WarnLevel:     Yellow,
			core.InfoLevel:     Green,
			core.VerboseLevel:  Blue,
			core.TraceLevel:    White,
			core.DebugLevel:    BrightBlack,
			core.PedanticLevel: BrightBlack,
			core.AnnoyingLevel: BrightBlack,
		},
		SourceColor:       Cyan,
		MessageColor:      White,
		FieldKeyColor:     BrightCyan,
		FieldValueColor:   White,
		SourceWidth:       12,
		MessageFixedWidth: 44,
		PadLevelText:      true,
	}
}

// Plain returns a theme with every color set to None, keeping the
// Default layout widths.
func Plain() Theme {
	return Theme{
		SourceWidth:       12,
		MessageFixedWidth: 44,
		PadLevelText:      true,
	}
}
