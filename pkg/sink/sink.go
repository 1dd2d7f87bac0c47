// Package sink provides ErrorSink implementations: a zerolog-backed sink
// for production use and an in-memory sink for tests.
package sink

import (
	"sync"

	"github.com/arthur-debert/recordflow/pkg/logging"
	"github.com/arthur-debert/recordflow/pkg/types"
)

// Logging reports failures as structured error log lines.
type Logging struct{}

// NewLogging creates a log-backed error sink.
func NewLogging() *Logging {
	return &Logging{}
}

// Report implements types.ErrorSink.
func (s *Logging) Report(report types.FailureReport) {
	logger := logging.GetLogger("errorsink")
	logger.Error().
		Str("correlationId", report.CorrelationID).
		Str("entity", report.Entity).
		Str("phase", report.Phase.String()).
		Err(report.Err).
		Msg("Handler callback failed")
}

// Memory captures failure reports for inspection. Intended for tests.
type Memory struct {
	mu      sync.Mutex
	reports []types.FailureReport
}

// NewMemory creates an in-memory error sink.
func NewMemory() *Memory {
	return &Memory{}
}

// Report implements types.ErrorSink.
func (s *Memory) Report(report types.FailureReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, report)
}

// Reports returns a copy of the captured reports in arrival order.
func (s *Memory) Reports() []types.FailureReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.FailureReport, len(s.reports))
	copy(out, s.reports)
	return out
}
