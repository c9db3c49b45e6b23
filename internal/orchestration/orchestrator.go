package orchestration

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/viviai0214/fancy-hello-world/internal/church"
	apperrors "github.com/viviai0214/fancy-hello-world/internal/errors"
	"github.com/viviai0214/fancy-hello-world/internal/fibonacci"
	"github.com/viviai0214/fancy-hello-world/internal/ledger"
	"github.com/viviai0214/fancy-hello-world/internal/logging"
	"github.com/viviai0214/fancy-hello-world/internal/metrics"
	"github.com/viviai0214/fancy-hello-world/internal/progress"
)

// ExpectedMessage is the constant the assembled message must equal. The
// entire program exists to print it.
const ExpectedMessage = "Hello World!"

// The four fixed input constants, one per fragment.
var (
	// helloPairs is the Fibonacci-encoded "Hello": F(10)=55, F(11)=89.
	helloPairs = []fibonacci.Pair{
		{Index: 10, Offset: 17},
		{Index: 11, Offset: 12},
		{Index: 11, Offset: 19},
		{Index: 11, Offset: 19},
		{Index: 11, Offset: 22},
	}

	// spaceCodePoint is the Church-numeral-encoded " ".
	spaceCodePoint = 32

	// worldCodePoints is the blockchain-mined "World".
	worldCodePoints = []rune{87, 111, 114, 108, 100}

	// bangCodePoint is the ASCII-pipeline "!".
	bangCodePoint = 33
)

// PatternNames is the fixed inventory of design patterns, handed to the
// presentation layer for the statistics block.
var PatternNames = []string{
	"Strategy", "Observer", "Factory", "Pipeline/Monad",
	"Blockchain", "Church Encoding", "Fibonacci Sequence",
}

// Result is the outcome of one full performance.
type Result struct {
	// Message is the assembled, verified message.
	Message string
	// Fragments holds the per-fragment outcomes in execution order.
	Fragments []FragmentResult
	// Duration is the total wall time of the performance.
	Duration time.Duration
}

// Stage is one named fragment decode. Stages returns them in the fixed
// execution order so drivers (CLI, TUI) can step through the performance.
type Stage struct {
	// Label is the subsystem name for presentation.
	Label string
	// Run decodes the stage's fragment.
	Run func(ctx context.Context) FragmentResult
}

// Orchestrator conducts the four decoders. It has no persisted state across
// invocations: every Perform call decodes the same constants to the same
// message, the memoization cache only accelerating, never changing, results.
type Orchestrator struct {
	decoder *fibonacci.Decoder
	emitter *progress.Emitter
	logger  logging.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures an Orchestrator during construction.
type Option func(*Orchestrator)

// WithLogger sets the application logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithMetrics attaches Prometheus instrumentation. A nil metrics value is
// allowed and disables recording.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) { o.metrics = m }
}

// WithObserver subscribes an additional character event observer.
func WithObserver(obs progress.Observer) Option {
	return func(o *Orchestrator) { o.emitter.Subscribe(obs) }
}

// New creates an Orchestrator. The silent witness observer is always
// subscribed first, preserving the original's guarantee that at least one
// observer hears every event and says nothing about any of them.
//
// Parameters:
//   - opts: Optional configuration.
//
// Returns:
//   - *Orchestrator: The orchestrator instance.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		decoder: fibonacci.NewDecoder(fibonacci.NewMemo()),
		emitter: progress.NewEmitter().Subscribe(progress.NoOpObserver{}),
		logger:  logging.NopLogger{},
		tracer:  otel.Tracer("fancyhello/orchestration"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Stages returns the four fragment decodes in their fixed execution order.
//
// Returns:
//   - []Stage: The ordered stages.
func (o *Orchestrator) Stages() []Stage {
	return []Stage{
		{Label: "fibonacci decoder", Run: o.renderHello},
		{Label: "church numerals", Run: o.renderSpace},
		{Label: "blockchain mining", Run: o.renderWorld},
		{Label: "ascii pipeline", Run: o.renderBang},
	}
}

// Perform runs the full performance: each stage strictly in sequence,
// concatenation in fragment order, and the final integrity assertion.
//
// Any fragment error aborts the run and propagates; a message that assembles
// but fails the assertion returns an apperrors.MismatchError, the single
// run-fatal failure mode.
//
// Parameters:
//   - ctx: The run context, propagated to tracing spans.
//   - reporter: Presentation callbacks; use NullStageReporter for none.
//
// Returns:
//   - Result: The verified message and per-fragment outcomes.
//   - error: The first fragment error, or a MismatchError.
func (o *Orchestrator) Perform(ctx context.Context, reporter StageReporter) (Result, error) {
	start := time.Now()
	ctx, span := o.tracer.Start(ctx, "perform")
	defer span.End()

	var fragments []FragmentResult
	for _, stage := range o.Stages() {
		reporter.StageStart(stage.Label)
		res := stage.Run(ctx)
		reporter.StageDone(res)
		fragments = append(fragments, res)

		if res.Err != nil {
			// Assemble would catch this too, but stopping here keeps the
			// remaining decoders from running after a failure.
			break
		}
	}

	message, err := o.Assemble(fragments)
	if err != nil {
		return Result{Fragments: fragments}, err
	}

	return Result{Message: message, Fragments: fragments, Duration: time.Since(start)}, nil
}

// Assemble concatenates fragment texts in fragment order and asserts the
// result against the expected constant. Drivers that step through Stages
// themselves (the TUI) call this once every stage has finished.
//
// Parameters:
//   - fragments: The per-fragment outcomes in execution order.
//
// Returns:
//   - string: The verified message.
//   - error: The first fragment error, or a MismatchError.
func (o *Orchestrator) Assemble(fragments []FragmentResult) (string, error) {
	var sb strings.Builder
	for _, f := range fragments {
		if f.Err != nil {
			o.metrics.IncVerifyFailure()
			o.logger.Error("fragment decode failed", f.Err, logging.String("stage", f.Label))
			return "", apperrors.WrapError(f.Err, "decoding %s fragment", f.Label)
		}
		sb.WriteString(f.Text)
	}

	message := sb.String()
	if message != ExpectedMessage {
		o.metrics.IncVerifyFailure()
		return "", apperrors.MismatchError{Want: ExpectedMessage, Got: message}
	}

	o.metrics.IncVerified()
	hits, misses := o.decoder.Memo().Stats()
	o.metrics.SetCacheStats(hits, misses)
	o.logger.Info("message assembled",
		logging.String("message", message),
		logging.Int("characters", len(message)),
		logging.Uint64("cache_hits", hits),
	)
	return message, nil
}

// renderHello decodes fragment 1 through the Fibonacci decoder.
func (o *Orchestrator) renderHello(ctx context.Context) FragmentResult {
	return o.timed(ctx, "fibonacci decoder", "fibonacci", func() (string, error) {
		text, err := o.decoder.Decode(helloPairs)
		if err != nil {
			return "", err
		}
		var sb strings.Builder
		for _, c := range text {
			sb.WriteRune(o.emitter.Emit(progress.EventRendered, c))
			o.metrics.IncCharacter("fibonacci")
		}
		return sb.String(), nil
	})
}

// renderSpace decodes fragment 2 through the Church numeral encoder.
func (o *Orchestrator) renderSpace(ctx context.Context) FragmentResult {
	return o.timed(ctx, "church numerals", "church", func() (string, error) {
		r, err := church.Encode(spaceCodePoint)
		if err != nil {
			return "", err
		}
		o.emitter.Emit(progress.EventRendered, r)
		o.metrics.IncCharacter("church")
		return string(r), nil
	})
}

// renderWorld mines fragment 3 into a fresh ledger chain and extracts it.
// The chain is created, filled, verified, and discarded within the stage.
func (o *Orchestrator) renderWorld(ctx context.Context) FragmentResult {
	return o.timed(ctx, "blockchain mining", "ledger", func() (string, error) {
		chain := ledger.New()
		for _, cp := range worldCodePoints {
			chain.Append(o.emitter.Emit(progress.EventSpawned, cp))
		}
		text, err := chain.Extract()
		if err != nil {
			return "", err
		}
		for _, c := range text {
			o.emitter.Emit(progress.EventValidated, c)
			o.metrics.IncCharacter("ledger")
		}
		return text, nil
	})
}

// renderBang converts fragment 4 directly to its character, by way of a
// pipeline of one. No decoding, no validation, just ceremony around rune(33).
func (o *Orchestrator) renderBang(ctx context.Context) FragmentResult {
	return o.timed(ctx, "ascii pipeline", "ascii", func() (string, error) {
		r := church.NewPipeline(rune(bangCodePoint)).Unwrap()
		o.emitter.Emit(progress.EventRendered, r)
		o.metrics.IncCharacter("ascii")
		return string(r), nil
	})
}

// timed wraps a fragment decode with timing, tracing, and metrics.
func (o *Orchestrator) timed(ctx context.Context, label, metricName string, run func() (string, error)) FragmentResult {
	_, span := o.tracer.Start(ctx, "fragment."+metricName)
	defer span.End()

	start := time.Now()
	text, err := run()
	duration := time.Since(start)

	span.SetAttributes(
		attribute.String("fragment.label", label),
		attribute.Int("fragment.chars", len(text)),
	)
	o.metrics.ObserveFragment(metricName, duration.Seconds())

	return FragmentResult{Label: label, Text: text, Duration: duration, Err: err}
}
