// Package ui centralizes terminal styling: ANSI color themes for plain CLI
// output and lipgloss styles for the banner, the reveal box, and the TUI.
package ui
