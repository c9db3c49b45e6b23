package ui

import "github.com/charmbracelet/lipgloss"

// RevealBoxWidth is the inner width of the final message box, matching the
// original's 40-column centred reveal.
const RevealBoxWidth = 40

// BannerStyle frames the startup banner.
var BannerStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(lipgloss.Color("14")).
	Foreground(lipgloss.Color("14")).
	Bold(true).
	Padding(0, 2)

// RevealBoxStyle frames the final message reveal.
var RevealBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("13")).
	Foreground(lipgloss.Color("13")).
	Bold(true).
	Width(RevealBoxWidth).
	Align(lipgloss.Center)

// StatsStyle dims the vanity statistics block.
var StatsStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("8"))

// RenderBanner renders the startup banner for the given version.
//
// Parameters:
//   - version: The application version string.
//
// Returns:
//   - string: The framed banner.
func RenderBanner(version string) string {
	if CurrentTheme().Name == "none" {
		return "ENTERPRISE HELLO WORLD v" + version + "\nPowered by: Fibonacci / Blockchain / Church Numerals"
	}
	return BannerStyle.Render(
		"🚀 ENTERPRISE HELLO WORLD v" + version + "\n" +
			"Powered by: Fibonacci · Blockchain · Church Numerals",
	)
}

// RenderRevealBox renders the final message in its centred box.
//
// Parameters:
//   - message: The assembled message.
//
// Returns:
//   - string: The boxed message.
func RenderRevealBox(message string) string {
	if CurrentTheme().Name == "none" {
		return message
	}
	return RevealBoxStyle.Render(message)
}
