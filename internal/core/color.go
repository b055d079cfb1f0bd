package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code; ColorDefault leaves the terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen // Shields
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed     // Enemy bullets, lives, game over
	ColorBrightGreen   // Defender, bottom-row enemies, win
	ColorBrightYellow  // Level, menu title
	ColorBrightMagenta // Top-row enemies
	ColorBrightCyan    // Middle-row enemies
	ColorBrightWhite   // Score, player bullets
	ColorOrange        // Explosions
	ColorGray          // Separators and hints

	colorCount
)

// Valid reports whether c is one of the defined colors.
func (c Color) Valid() bool {
	return c < colorCount
}
