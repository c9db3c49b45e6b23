package ui

import (
	"os"
	"sync"
)

// Theme defines a color scheme for plain CLI output.
// Each field contains an ANSI escape code for the corresponding category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements (labels, stats).
	Secondary string
	// Success indicates completed fragments and the passing assertion.
	Success string
	// Warning is used for the "initializing subsystems" ceremony.
	Warning string
	// Error indicates failures.
	Error string
	// Info is used for fragment values.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is the default theme, tuned for dark terminals and maximum
	// enterprise gravitas.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[1;36m",     // Bold cyan, as the original banner
		Secondary: "\033[90m",       // Dim grey
		Success:   "\033[32m",       // Green
		Warning:   "\033[1;33m",     // Bold yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[1;35m",     // Bold magenta
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color is provided.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// InitTheme selects the active theme. Color is disabled when noColor is true
// or the NO_COLOR environment variable is set (https://no-color.org).
//
// Parameters:
//   - noColor: Explicitly disable color (e.g. from --no-color).
func InitTheme(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		SetTheme(NoColorTheme)
		return
	}
	SetTheme(DarkTheme)
}

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// Accessors for the active theme's escape codes, used by the CLI presenter.

// ColorPrimary returns the primary accent escape code.
func ColorPrimary() string { return CurrentTheme().Primary }

// ColorSecondary returns the secondary escape code.
func ColorSecondary() string { return CurrentTheme().Secondary }

// ColorSuccess returns the success escape code.
func ColorSuccess() string { return CurrentTheme().Success }

// ColorWarning returns the warning escape code.
func ColorWarning() string { return CurrentTheme().Warning }

// ColorError returns the error escape code.
func ColorError() string { return CurrentTheme().Error }

// ColorInfo returns the info escape code.
func ColorInfo() string { return CurrentTheme().Info }

// ColorReset returns the reset escape code.
func ColorReset() string { return CurrentTheme().Reset }
