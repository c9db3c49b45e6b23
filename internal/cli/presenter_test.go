package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/viviai0214/fancy-hello-world/internal/errors"
	"github.com/viviai0214/fancy-hello-world/internal/orchestration"
	"github.com/viviai0214/fancy-hello-world/internal/sysmon"
	"github.com/viviai0214/fancy-hello-world/internal/ui"
)

// fakeSpinner records spinner calls without animating anything.
type fakeSpinner struct {
	starts, stops int
	suffix        string
}

func (f *fakeSpinner) Start()                     { f.starts++ }
func (f *fakeSpinner) Stop()                      { f.stops++ }
func (f *fakeSpinner) UpdateSuffix(suffix string) { f.suffix = suffix }

// plainTheme forces predictable output for assertions.
func plainTheme(t *testing.T) {
	t.Helper()
	ui.SetTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetTheme(ui.DarkTheme) })
}

// TestStageReporter_SuccessRow tests the checkmark row for a decoded fragment.
func TestStageReporter_SuccessRow(t *testing.T) {
	plainTheme(t)
	var buf bytes.Buffer
	spin := &fakeSpinner{}
	r := &StageReporter{out: &buf, delay: 0, spin: spin}

	r.StageStart("fibonacci decoder")
	r.StageDone(orchestration.FragmentResult{
		Label:    "fibonacci decoder",
		Text:     "Hello",
		Duration: 120 * time.Microsecond,
	})

	out := buf.String()
	for _, want := range []string{"✓", "[fibonacci decoder]", `"Hello"`, "120µs"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if spin.starts != 1 || spin.stops != 1 {
		t.Errorf("spinner starts/stops = %d/%d, want 1/1", spin.starts, spin.stops)
	}
	if !strings.Contains(spin.suffix, "fibonacci decoder") {
		t.Errorf("spinner suffix %q missing label", spin.suffix)
	}
}

// TestStageReporter_FailureRow tests the failure row.
func TestStageReporter_FailureRow(t *testing.T) {
	plainTheme(t)
	var buf bytes.Buffer
	r := &StageReporter{out: &buf, delay: 0, spin: &fakeSpinner{}}

	r.StageStart("blockchain mining")
	r.StageDone(orchestration.FragmentResult{
		Label: "blockchain mining",
		Err:   errors.New("chain corrupted"),
	})

	out := buf.String()
	if !strings.Contains(out, "✗") || !strings.Contains(out, "chain corrupted") {
		t.Errorf("failure row %q should contain mark and error", out)
	}
}

// TestStageReporter_HoldsMinimumDelay verifies the dramatic pause.
func TestStageReporter_HoldsMinimumDelay(t *testing.T) {
	plainTheme(t)
	var buf bytes.Buffer
	r := &StageReporter{out: &buf, delay: 30 * time.Millisecond, spin: &fakeSpinner{}}

	r.StageStart("church numerals")
	start := time.Now()
	r.StageDone(orchestration.FragmentResult{Label: "church numerals", Text: " "})

	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Errorf("StageDone returned after %s, want at least ~30ms hold", elapsed)
	}
}

// TestPrintBanner tests banner content.
func TestPrintBanner(t *testing.T) {
	plainTheme(t)
	var buf bytes.Buffer
	PrintBanner("4.2.0-alpha", &buf)

	out := buf.String()
	if !strings.Contains(out, "4.2.0-alpha") {
		t.Errorf("banner %q missing version", out)
	}
	if !strings.Contains(out, "Initializing subsystems...") {
		t.Errorf("banner %q missing initializing line", out)
	}
}

// TestPresentResult tests the reveal and statistics block.
func TestPresentResult(t *testing.T) {
	plainTheme(t)
	var buf bytes.Buffer
	result := orchestration.Result{
		Message:  "Hello World!",
		Duration: 200 * time.Microsecond,
	}

	PresentResult(result, sysmon.Stats{CPUPercent: 10, MemPercent: 20}, &buf)

	out := buf.String()
	for _, want := range []string{
		"Verifying blockchain integrity...",
		"Hello World!",
		"Design patterns used:",
		"Church Encoding",
		"Characters produced: 12",
		"CPU 10.0%",
		"Was it worth it: Absolutely.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestPresentQuiet verifies quiet mode prints the bare message only.
func TestPresentQuiet(t *testing.T) {
	var buf bytes.Buffer
	PresentQuiet(orchestration.Result{Message: "Hello World!"}, &buf)
	if got := buf.String(); got != "Hello World!\n" {
		t.Errorf("quiet output = %q, want message and newline only", got)
	}
}

// TestHandleRunError maps error classes to exit codes.
func TestHandleRunError(t *testing.T) {
	plainTheme(t)

	t.Run("mismatch is the fatal exit code", func(t *testing.T) {
		var buf bytes.Buffer
		err := apperrors.MismatchError{Want: "Hello World!", Got: "hello world"}
		if code := HandleRunError(err, &buf); code != apperrors.ExitErrorMismatch {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
		}
		if !strings.Contains(buf.String(), "FATAL") {
			t.Errorf("output %q should be marked fatal", buf.String())
		}
	})

	t.Run("other errors are generic", func(t *testing.T) {
		var buf bytes.Buffer
		if code := HandleRunError(errors.New("boom"), &buf); code != apperrors.ExitErrorGeneric {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorGeneric)
		}
	})
}
