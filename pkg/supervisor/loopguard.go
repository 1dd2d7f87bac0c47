package supervisor

import "github.com/arthur-debert/recordflow/pkg/errors"

// LoopGuard bounds repeated invocation within one supervisor instance's
// lifetime. Record-change cascades re-enter the dispatch layer (an update
// callback that performs an update fires the update event again); the
// guard is the only safeguard against that recursion running unbounded.
//
// The count only increases. The guard is permissive until a ceiling is
// set; once the count exceeds a set ceiling, every further invocation on
// this instance fails before its callback runs. The guard is per instance,
// not per identity: a fresh supervisor starts a fresh count.
type LoopGuard struct {
	count  int
	max    int
	maxSet bool
}

// SetMaxLoopCount sets the invocation ceiling. n must be non-negative.
func (g *LoopGuard) SetMaxLoopCount(n int) error {
	if n < 0 {
		return errors.Newf(errors.ErrInvalidInput, "max loop count must be non-negative, got %d", n)
	}
	g.max = n
	g.maxSet = true
	return nil
}

// ClearMaxLoopCount removes the ceiling, returning the guard to its
// permissive default.
func (g *LoopGuard) ClearMaxLoopCount() {
	g.max = 0
	g.maxSet = false
}

// AddToLoopCount counts one invocation. It returns a LOOP_LIMIT_EXCEEDED
// error when a ceiling is set and the new count exceeds it. The count is
// incremented either way.
func (g *LoopGuard) AddToLoopCount() error {
	g.count++
	if g.maxSet && g.count > g.max {
		return errors.Newf(errors.ErrLoopLimitExceeded,
			"loop count %d exceeds maximum of %d", g.count, g.max)
	}
	return nil
}

// Count returns the number of invocations counted so far.
func (g *LoopGuard) Count() int {
	return g.count
}

// Max returns the ceiling and whether one is set.
func (g *LoopGuard) Max() (int, bool) {
	return g.max, g.maxSet
}
