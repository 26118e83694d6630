// Package attention tracks a boolean gaze state and reports only its
// transitions.
package attention

import (
	"time"

	"github.com/google/uuid"

	"github.com/teslashibe/go-headlink/pkg/wire"
)

// Transition is emitted when the latched gaze state changes.
type Transition struct {
	// ID correlates the event in downstream logs.
	ID string
	// Looking is the newly latched state.
	Looking bool
	// At is the wall clock at receipt.
	At time.Time
	// SenderTimestamp is the sender's clock, passed through opaquely.
	SenderTimestamp int64
}

// Latch is an edge detector over the gaze stream. Before the first sample
// it is unobserved, so the first sample always emits a transition. There is
// no debouncing and no timeout-based reset.
type Latch struct {
	looking  bool
	observed bool
	now      func() time.Time
}

// NewLatch returns an unobserved latch.
func NewLatch() *Latch {
	return &Latch{now: time.Now}
}

// Observe feeds one gaze sample. It returns a transition and true when the
// sample differs from the latched state (or the latch was unobserved), and
// latches the new value; otherwise it returns false and emits nothing.
func (l *Latch) Observe(s wire.GazeSample) (Transition, bool) {
	if l.observed && l.looking == s.Looking {
		return Transition{}, false
	}
	l.looking = s.Looking
	l.observed = true
	return Transition{
		ID:              uuid.NewString(),
		Looking:         s.Looking,
		At:              l.now(),
		SenderTimestamp: s.Timestamp,
	}, true
}

// Current returns the latched state. ok is false while unobserved.
func (l *Latch) Current() (looking, ok bool) {
	return l.looking, l.observed
}
