package theme

// Color is an ANSI SGR color code. None means "no color"; colorize
// helpers emit text unchanged when both foreground and background are
// None.
type Color uint8

const (
	None Color = 0

	// Foreground colors
	Red           Color = 31
	Green         Color = 32
	Yellow        Color = 33
	Blue          Color = 34
	Magenta       Color = 35
	Cyan          Color = 36
	White         Color = 37
	BrightBlack   Color = 90
	BrightRed     Color = 91
	BrightGreen   Color = 92
	BrightYellow  Color = 93
	BrightBlue    Color = 94
	BrightMagenta Color = 95
	BrightCyan    Color = 96
	BrightWhite   Color = 97

	// Background colors
	OnRed           Color = 41
	OnGreen         Color = 42
	OnYellow        Color = 43
	OnBlue          Color = 44
	OnMagenta       Color = 45
	OnCyan          Color = 46
	OnWhite         Color = 47
	OnGray          Color = 100
	OnBrightRed     Color = 101
	OnBrightGreen   Color = 102
	OnBrightYellow  Color = 103
	OnBrightBlue    Color = 104
	OnBrightMagenta Color = 105
	OnBrightCyan    Color = 106
	OnBrightWhite   Color = 107
)
