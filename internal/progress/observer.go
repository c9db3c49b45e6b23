// Package progress implements the character event observer layer. Decoders
// report nothing themselves; the orchestrator emits an event per character so
// presentation layers can watch the message being assembled without the core
// depending on them.
package progress

import (
	"sync"

	"github.com/viviai0214/fancy-hello-world/internal/logging"
)

// EventKind classifies a character lifecycle event.
type EventKind int

const (
	// EventSpawned fires when a character is first produced by a decoder.
	EventSpawned EventKind = iota
	// EventValidated fires when a character passes a validation step.
	EventValidated
	// EventRendered fires when a character joins the final message.
	EventRendered
)

// String returns the event kind's display name.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventValidated:
		return "validated"
	case EventRendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// Observer receives character events. Implementations must not panic: the
// emitter does not recover, and a panicking observer is a contract violation
// by the observer, not a condition the emitter handles.
type Observer interface {
	// OnEvent is called synchronously for each emitted event.
	OnEvent(kind EventKind, char rune)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(kind EventKind, char rune)

// OnEvent calls the underlying function.
func (f ObserverFunc) OnEvent(kind EventKind, char rune) { f(kind, char) }

// Emitter fans character events out to registered observers, synchronously
// and in registration order. Registration is safe for concurrent use; the
// sequential orchestrator emits from a single goroutine.
type Emitter struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewEmitter creates an emitter with no observers.
//
// Returns:
//   - *Emitter: The emitter instance.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Subscribe registers an observer and returns the emitter for chained calls.
//
// Parameters:
//   - obs: The observer to register.
//
// Returns:
//   - *Emitter: The same emitter, for chaining.
func (e *Emitter) Subscribe(obs Observer) *Emitter {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, obs)
	return e
}

// Emit notifies every registered observer of the event and returns the
// character, so emission can be threaded through an assembly expression the
// way the original does it.
//
// Parameters:
//   - kind: The event classification.
//   - char: The character the event concerns.
//
// Returns:
//   - rune: The same character, unchanged.
func (e *Emitter) Emit(kind EventKind, char rune) rune {
	e.mu.RLock()
	snapshot := e.observers
	e.mu.RUnlock()

	for _, obs := range snapshot {
		obs.OnEvent(kind, char)
	}
	return char
}

// NoOpObserver observes everything and says nothing.
type NoOpObserver struct{}

// Verify interface compliance.
var _ Observer = NoOpObserver{}

// OnEvent discards the event.
func (NoOpObserver) OnEvent(EventKind, rune) {}

// LoggingObserver logs each event at debug level through the application
// logger.
type LoggingObserver struct {
	logger logging.Logger
}

// Verify interface compliance.
var _ Observer = (*LoggingObserver)(nil)

// NewLoggingObserver creates an observer logging to the given logger.
//
// Parameters:
//   - logger: The destination logger.
//
// Returns:
//   - *LoggingObserver: The observer instance.
func NewLoggingObserver(logger logging.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// OnEvent logs the event.
func (o *LoggingObserver) OnEvent(kind EventKind, char rune) {
	o.logger.Debug("character event",
		logging.String("kind", kind.String()),
		logging.String("char", string(char)),
	)
}

// Event pairs an EventKind with its character for channel delivery.
type Event struct {
	Kind EventKind
	Char rune
}

// ChannelObserver forwards events to a channel without ever blocking the
// emitter: if the channel is full the event is dropped. Used by the TUI to
// animate characters as they are produced.
type ChannelObserver struct {
	ch chan Event
}

// Verify interface compliance.
var _ Observer = (*ChannelObserver)(nil)

// NewChannelObserver creates a channel observer with the given buffer size.
//
// Parameters:
//   - buffer: The channel buffer capacity.
//
// Returns:
//   - *ChannelObserver: The observer instance.
func NewChannelObserver(buffer int) *ChannelObserver {
	return &ChannelObserver{ch: make(chan Event, buffer)}
}

// Events returns the receive side of the observer's channel.
func (o *ChannelObserver) Events() <-chan Event { return o.ch }

// OnEvent forwards the event, dropping it if the channel is full.
func (o *ChannelObserver) OnEvent(kind EventKind, char rune) {
	select {
	case o.ch <- Event{Kind: kind, Char: char}:
	default:
	}
}
