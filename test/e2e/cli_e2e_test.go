package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary functions correctly
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "fancyhello"
	if runtime.GOOS == "windows" {
		binName = "fancyhello.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with CWD set to the test package directory, so the module
	// root is two levels up.
	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/fancyhello")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build fancyhello: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Quiet Mode",
			args:     []string{"--quiet"},
			wantOut:  "Hello World!",
			wantCode: 0,
		},
		{
			name:     "Quiet Short Flag",
			args:     []string{"-q"},
			wantOut:  "Hello World!",
			wantCode: 0,
		},
		{
			name:     "Default Mode Banner",
			args:     []string{"--delay", "0"},
			wantOut:  "ENTERPRISE HELLO WORLD",
			wantCode: 0,
		},
		{
			name:     "Default Mode Message",
			args:     []string{"--delay", "0"},
			wantOut:  "Hello World!",
			wantCode: 0,
		},
		{
			name:     "Default Mode Stats",
			args:     []string{"--delay", "0"},
			wantOut:  "Was it worth it",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "fancyhello",
			wantCode: 0,
		},
		{
			name:     "Invalid Flag",
			args:     []string{"--no-such-flag"},
			wantOut:  "",
			wantCode: 4,
		},
		{
			name:     "Negative Delay",
			args:     []string{"--delay", "-5ms"},
			wantOut:  "",
			wantCode: 4,
		},
		{
			name:     "Quiet And TUI Conflict",
			args:     []string{"--quiet", "--tui"},
			wantOut:  "",
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Errorf("Expected non-zero exit code, but command succeeded.\nOutput: %s", outStr)
				} else if exitErr, ok := err.(*exec.ExitError); ok {
					if exitErr.ExitCode() != tt.wantCode {
						t.Errorf("Exit code mismatch: got %d, want %d\nOutput: %s",
							exitErr.ExitCode(), tt.wantCode, outStr)
					}
				}
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}
