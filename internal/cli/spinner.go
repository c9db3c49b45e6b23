package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate defines the spinner animation frame interval.
const SpinnerRefreshRate = 100 * time.Millisecond

// Spinner abstracts the terminal spinner so the stage reporter can be tested
// without animating a real one.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner in the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// newRealSpinner creates a spinner writing to out.
func newRealSpinner(out io.Writer) Spinner {
	return &realSpinner{
		s: spinner.New(spinner.CharSets[14], SpinnerRefreshRate, spinner.WithWriter(out)),
	}
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() { rs.s.Start() }

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the text displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }
