// Package head maintains the latest head orientation and derives the rigid
// transforms for the head and eye anchors.
package head

import "github.com/teslashibe/go-headlink/pkg/wire"

// State owns the last-applied pose sample for a single consumer role.
//
// Each role process creates its own State and mutates it only from its
// receive loop, so no locking is needed. Inject it rather than sharing a
// package-level singleton.
type State struct {
	sample wire.PoseSample
	set    bool
}

// NewState returns an unset State. Current reports ok=false until the first
// Update.
func NewState() *State {
	return &State{}
}

// Update unconditionally overwrites the held pose with sample. Every
// successful decode becomes the new ground truth: no smoothing, no rate
// limiting. It returns the previous sample and whether one existed, for
// callers that want delta or logging behaviour.
func (s *State) Update(sample wire.PoseSample) (prev wire.PoseSample, had bool) {
	prev, had = s.sample, s.set
	s.sample = sample
	s.set = true
	return prev, had
}

// Current returns the latest sample. ok is false before the first receipt;
// consumers must skip the frame rather than defaulting to a zero pose, which
// would snap the head to (0,0) at startup.
func (s *State) Current() (sample wire.PoseSample, ok bool) {
	return s.sample, s.set
}
