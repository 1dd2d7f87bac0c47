package supervisor

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/recordflow/pkg/bypass"
	"github.com/arthur-debert/recordflow/pkg/errors"
	"github.com/arthur-debert/recordflow/pkg/logging"
	"github.com/arthur-debert/recordflow/pkg/metrics"
	"github.com/arthur-debert/recordflow/pkg/sink"
	"github.com/arthur-debert/recordflow/pkg/types"
)

// Config describes one supervisor instance. Entity and Phase are required;
// everything else has a working default.
type Config struct {
	// Entity is the entity type the triggering batch belongs to.
	Entity string

	// Identity names the handler for bypass and reporting purposes.
	// Defaults to Entity + "Handler", matching the convention of keying
	// suppression by handler class name.
	Identity string

	// Phase is the lifecycle phase firing, fixed for this instance.
	Phase types.Phase

	// Batch is the record batch the event fired for.
	Batch *types.Batch

	// Callbacks is the phase-to-handler table. Unset phases are no-ops.
	Callbacks Callbacks

	// Bypasses is the execution context's shared registry. When nil the
	// supervisor gets a private registry, which disables cross-handler
	// suppression but keeps every operation total.
	Bypasses *bypass.Registry

	// Deactivation answers whether the entity's handling is switched off.
	// Nil means never deactivated.
	Deactivation types.DeactivationLookup

	// Sink receives failure reports. Defaults to the zerolog sink.
	Sink types.ErrorSink

	// Metrics is optional; nil records nothing.
	Metrics *metrics.Collector
}

// Supervisor routes one record-change event to the matching phase
// callback. Construct one per batch per phase; Run may be invoked more
// than once on the same instance only by a cascade re-entering it, which
// is exactly what the loop guard bounds.
type Supervisor struct {
	entity    string
	identity  string
	phase     types.Phase
	batch     *types.Batch
	callbacks Callbacks

	bypasses     *bypass.Registry
	deactivation types.DeactivationLookup
	sink         types.ErrorSink
	metrics      *metrics.Collector

	guard LoopGuard
	state State
}

// New creates a supervisor for one batch and one lifecycle phase.
func New(cfg Config) (*Supervisor, error) {
	if cfg.Entity == "" {
		return nil, errors.New(errors.ErrInvalidInput, "supervisor entity cannot be empty")
	}
	if !cfg.Phase.IsValid() {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid lifecycle phase %d", cfg.Phase)
	}

	identity := cfg.Identity
	if identity == "" {
		identity = cfg.Entity + "Handler"
	}

	bypasses := cfg.Bypasses
	if bypasses == nil {
		bypasses = bypass.New()
	}

	errSink := cfg.Sink
	if errSink == nil {
		errSink = sink.NewLogging()
	}

	batch := cfg.Batch
	if batch == nil {
		batch = &types.Batch{}
	}

	return &Supervisor{
		entity:       cfg.Entity,
		identity:     identity,
		phase:        cfg.Phase,
		batch:        batch,
		callbacks:    cfg.Callbacks,
		bypasses:     bypasses,
		deactivation: cfg.Deactivation,
		sink:         errSink,
		metrics:      cfg.Metrics,
		state:        StateCreated,
	}, nil
}

// Identity returns the handler identity used for bypass checks.
func (s *Supervisor) Identity() string {
	return s.identity
}

// State returns where the supervisor is in its dispatch lifecycle. After
// Run returns it reflects the outcome of the most recent call.
func (s *Supervisor) State() State {
	return s.state
}

// LoopCount returns the number of invocations counted so far.
func (s *Supervisor) LoopCount() int {
	return s.guard.Count()
}

// SetMaxLoopCount sets the invocation ceiling on this instance's guard.
func (s *Supervisor) SetMaxLoopCount(n int) error {
	return s.guard.SetMaxLoopCount(n)
}

// ClearMaxLoopCount removes the ceiling.
func (s *Supervisor) ClearMaxLoopCount() {
	s.guard.ClearMaxLoopCount()
}

// Run dispatches the event: eligibility check, loop accounting, then the
// one callback matching the bound phase. A suppressed run is the normal
// short circuit for deactivated or bypassed handlers and produces no side
// effects. Callback failures never escape: they are reported to the sink
// under a fresh correlation id and turned into rejections on every record
// in the affected batch view.
func (s *Supervisor) Run() Result {
	start := time.Now()
	logger := logging.GetLogger("supervisor").With().
		Str("entity", s.entity).
		Str("phase", s.phase.String()).
		Logger()

	result := s.run(logger)

	s.metrics.ObserveRun(s.entity, s.phase, result.Status.String(), time.Since(start))
	return result
}

func (s *Supervisor) run(logger zerolog.Logger) Result {
	if s.deactivated() {
		s.state = StateSuppressed
		logger.Debug().Msg("Handler deactivated, skipping")
		return Result{Status: StatusSuppressed}
	}
	if s.bypasses.IsBypassed(s.identity) {
		s.state = StateSuppressed
		logger.Debug().Str("identity", s.identity).Msg("Handler bypassed, skipping")
		return Result{Status: StatusSuppressed}
	}
	s.state = StateEligible

	if err := s.guard.AddToLoopCount(); err != nil {
		s.state = StateAborted
		s.metrics.LoopAbort(s.entity)
		logger.Error().Err(err).Int("count", s.guard.Count()).Msg("Loop limit exceeded")
		return Result{Status: StatusAborted, Err: err}
	}

	s.state = StateRunning
	callback := s.callbacks.ForPhase(s.phase)
	if callback == nil {
		s.state = StateCompleted
		logger.Trace().Msg("No callback for phase, completing as no-op")
		return Result{Status: StatusCompleted}
	}

	err := s.invoke(callback, logger)
	if err != nil {
		return s.isolateFailure(err, logger)
	}

	s.state = StateCompleted
	logger.Debug().Int("records", s.batch.Size(s.phase)).Msg("Callback completed")
	return Result{Status: StatusCompleted}
}

// invoke runs the callback, converting a panic into an error so no
// failure mode escapes the dispatch boundary.
func (s *Supervisor) invoke(callback Callback, logger zerolog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.ErrCallbackPanic, "callback panicked: %v", r)
		}
	}()

	ctx := &Context{
		Entity:   s.entity,
		Phase:    s.phase,
		Batch:    s.batch,
		Bypasses: s.bypasses,
		Log:      logger,
	}
	return callback(ctx)
}

// isolateFailure assigns a correlation id, reports to the sink exactly
// once, and marks every record in the affected batch view as rejected with
// a message carrying that id.
func (s *Supervisor) isolateFailure(cause error, logger zerolog.Logger) Result {
	s.state = StateAborted
	correlationID := uuid.NewString()

	s.sink.Report(types.FailureReport{
		CorrelationID: correlationID,
		Entity:        s.entity,
		Phase:         s.phase,
		Err:           cause,
	})
	s.metrics.CallbackFailure(s.entity, s.phase)

	msg := fmt.Sprintf("%s %s handler failed, correlation id %s", s.entity, s.phase, correlationID)
	for _, record := range s.batch.Affected(s.phase) {
		record.AddError(msg)
	}

	logger.Error().
		Err(cause).
		Str("correlationId", correlationID).
		Int("records", s.batch.Size(s.phase)).
		Msg("Callback failed, batch rejected")

	return Result{
		Status:        StatusAborted,
		CorrelationID: correlationID,
		Err:           errors.Wrapf(cause, errors.ErrCallbackFailed, "%s %s callback failed", s.entity, s.phase),
	}
}

func (s *Supervisor) deactivated() bool {
	if s.deactivation == nil {
		return false
	}
	return s.deactivation.IsDeactivated(s.entity)
}
