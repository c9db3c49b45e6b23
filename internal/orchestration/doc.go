// Package orchestration conducts the assembly of the message. It owns the
// four fixed fragment constants, runs the decoders strictly in sequence,
// concatenates the fragments, and asserts the result against the expected
// constant. All presentation is delegated through small interfaces so the
// core never depends on UI concerns.
package orchestration
