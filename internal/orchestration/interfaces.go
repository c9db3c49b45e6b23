package orchestration

import "time"

// FragmentResult encapsulates the outcome of a single fragment decode.
// It is the shared domain type between orchestration and presentation.
type FragmentResult struct {
	// Label is the subsystem name shown to the user (e.g. "fibonacci decoder").
	Label string
	// Text is the decoded fragment. Empty if an error occurred.
	Text string
	// Duration is the time taken to decode the fragment.
	Duration time.Duration
	// Err contains any error that occurred during the decode.
	Err error
}

// StageReporter receives presentation callbacks around each fragment decode.
// This interface decouples the orchestration layer from the presentation
// layer; the core works identically under the theatrical CLI, the TUI, and
// quiet mode.
type StageReporter interface {
	// StageStart is called before a fragment decode begins.
	StageStart(label string)
	// StageDone is called after a fragment decode finishes, successfully
	// or not.
	StageDone(result FragmentResult)
}

// StageReporterFunc adapts a pair of functions to the StageReporter
// interface. Either function may be nil.
type StageReporterFunc struct {
	Start func(label string)
	Done  func(result FragmentResult)
}

// StageStart calls the Start function if present.
func (f StageReporterFunc) StageStart(label string) {
	if f.Start != nil {
		f.Start(label)
	}
}

// StageDone calls the Done function if present.
func (f StageReporterFunc) StageDone(result FragmentResult) {
	if f.Done != nil {
		f.Done(result)
	}
}

// NullStageReporter is a no-op StageReporter for quiet mode and tests.
type NullStageReporter struct{}

// StageStart does nothing.
func (NullStageReporter) StageStart(string) {}

// StageDone does nothing.
func (NullStageReporter) StageDone(FragmentResult) {}
