package app

import (
	"fmt"
	"io"
)

// Version is the application version. "Patent pending" since v1.
var Version = "4.2.0-alpha"

// HasVersionFlag checks whether the arguments request the version.
//
// Parameters:
//   - args: The command-line arguments (without the program name).
//
// Returns:
//   - bool: true if --version or -version is present.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version line.
//
// Parameters:
//   - out: The destination writer.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "fancyhello v%s\n", Version)
}
