// Package cli renders the theatrical command-line performance: banner,
// dramatic pauses, per-subsystem checkmarks, the boxed reveal, and the vanity
// statistics block. None of it is load-bearing; all of it is the point.
package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	apperrors "github.com/viviai0214/fancy-hello-world/internal/errors"
	"github.com/viviai0214/fancy-hello-world/internal/format"
	"github.com/viviai0214/fancy-hello-world/internal/orchestration"
	"github.com/viviai0214/fancy-hello-world/internal/sysmon"
	"github.com/viviai0214/fancy-hello-world/internal/ui"
)

// StageReporter implements orchestration.StageReporter with a spinner per
// subsystem and a dramatic pause before each checkmark.
type StageReporter struct {
	out     io.Writer
	delay   time.Duration
	spin    Spinner
	started time.Time
}

// Verify interface compliance.
var _ orchestration.StageReporter = (*StageReporter)(nil)

// NewStageReporter creates a reporter writing to out, pausing delay per
// stage.
//
// Parameters:
//   - out: The destination writer.
//   - delay: The minimum on-screen duration of each stage.
//
// Returns:
//   - *StageReporter: The reporter instance.
func NewStageReporter(out io.Writer, delay time.Duration) *StageReporter {
	return &StageReporter{out: out, delay: delay, spin: newRealSpinner(out)}
}

// StageStart starts the spinner for a subsystem.
func (r *StageReporter) StageStart(label string) {
	r.started = time.Now()
	r.spin.UpdateSuffix(fmt.Sprintf(" %s[%s]%s", ui.ColorSecondary(), label, ui.ColorReset()))
	r.spin.Start()
}

// StageDone holds the stage on screen for the configured pause, stops the
// spinner, and prints the outcome row.
func (r *StageReporter) StageDone(res orchestration.FragmentResult) {
	if remaining := r.delay - time.Since(r.started); remaining > 0 {
		time.Sleep(remaining)
	}
	r.spin.Stop()

	if res.Err != nil {
		fmt.Fprintf(r.out, "%s✗%s %s[%s]%s %v\n",
			ui.ColorError(), ui.ColorReset(),
			ui.ColorSecondary(), res.Label, ui.ColorReset(), res.Err)
		return
	}
	fmt.Fprintf(r.out, "%s✓%s %s[%s]%s %q  %s%s%s\n",
		ui.ColorSuccess(), ui.ColorReset(),
		ui.ColorSecondary(), res.Label, ui.ColorReset(),
		res.Text,
		ui.ColorSecondary(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
}

// PrintBanner prints the startup banner and the initializing line.
//
// Parameters:
//   - version: The application version string.
//   - out: The destination writer.
func PrintBanner(version string, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n\n", ui.RenderBanner(version))
	fmt.Fprintf(out, "%s  Initializing subsystems...%s\n\n", ui.ColorWarning(), ui.ColorReset())
}

// PresentResult prints the integrity beat, the boxed reveal, and the vanity
// statistics for a successful run.
//
// Parameters:
//   - result: The performance outcome.
//   - stats: A system usage snapshot for the statistics block.
//   - out: The destination writer.
func PresentResult(result orchestration.Result, stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\n%s  Verifying blockchain integrity...%s %s✓%s\n",
		ui.ColorWarning(), ui.ColorReset(), ui.ColorSuccess(), ui.ColorReset())

	fmt.Fprintf(out, "\n%s\n\n", ui.RenderRevealBox(result.Message))

	PresentStats(result, stats, out)
}

// PresentStats prints the statistics block: pattern inventory, character
// count, timing, and a system snapshot nobody asked for.
func PresentStats(result orchestration.Result, stats sysmon.Stats, out io.Writer) {
	dim, reset := ui.ColorSecondary(), ui.ColorReset()

	fmt.Fprintf(out, "%s  Design patterns used: ", dim)
	for i, name := range orchestration.PatternNames {
		if i > 0 {
			fmt.Fprint(out, ", ")
		}
		fmt.Fprint(out, name)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  Characters produced: %d\n", len(result.Message))
	fmt.Fprintf(out, "  Total wall time: %s\n", format.FormatExecutionDuration(result.Duration))
	fmt.Fprintf(out, "  System load during delivery: CPU %s, memory %s\n", stats.CPUString(), stats.MemString())
	fmt.Fprintf(out, "  Was it worth it: Absolutely.%s\n\n", reset)
}

// PresentQuiet prints only the message, for quiet mode.
func PresentQuiet(result orchestration.Result, out io.Writer) {
	fmt.Fprintln(out, result.Message)
}

// HandleRunError prints a run failure and maps it to an exit code.
//
// Parameters:
//   - err: The error returned by the orchestrator.
//   - out: The destination writer for the failure message.
//
// Returns:
//   - int: The process exit code.
func HandleRunError(err error, out io.Writer) int {
	var mismatch apperrors.MismatchError
	if errors.As(err, &mismatch) {
		fmt.Fprintf(out, "%sFATAL:%s %v\n", ui.ColorError(), ui.ColorReset(), err)
		return apperrors.ExitErrorMismatch
	}
	fmt.Fprintf(out, "%sError:%s %v\n", ui.ColorError(), ui.ColorReset(), err)
	return apperrors.ExitErrorGeneric
}
