// Package theme holds the visual configuration consumed by color-aware
// formatters: ANSI color codes for each level and message component,
// plus the layout widths used for column alignment.
//
// Themes are plain data. The Default theme carries the full color
// palette; the Plain theme sets every color to None and is the right
// choice for non-TTY output or user-requested colorless logs. Custom
// themes are ordinary Theme values supplied by the caller.
package theme
