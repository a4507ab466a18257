package core

// Color is a cell foreground. The terminal front end maps each value to an
// ANSI 256-color code; ColorDefault leaves the terminal colour untouched.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// HealthColor colours a vitals readout: green while healthy, yellow below
// half and red below a quarter of maxHealth.
func HealthColor(health, maxHealth float64) Color {
	switch {
	case maxHealth <= 0:
		return ColorDefault
	case health < maxHealth/4:
		return ColorBrightRed
	case health < maxHealth/2:
		return ColorBrightYellow
	default:
		return ColorBrightGreen
	}
}
