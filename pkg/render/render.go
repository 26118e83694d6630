// Package render drives a display surface from the pose stream.
//
// Unlike the actuator path, the render loop is tick-driven: each tick polls
// the socket once without blocking, and an empty socket simply reuses the
// last known pose.
package render

import (
	"context"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/teslashibe/go-headlink/internal/log"
	"github.com/teslashibe/go-headlink/pkg/head"
	"github.com/teslashibe/go-headlink/pkg/wire"
)

// TransformSink receives the per-part rigid transforms for display.
type TransformSink interface {
	SetTransform(part string, rotation *mat.Dense, translation r3.Vec) error
}

// Receiver is the non-blocking poll side of a datagram source.
// *stream.Listener satisfies it.
type Receiver interface {
	TryReceive() (data []byte, ok bool, err error)
}

// DefaultTick is the render scheduling period.
const DefaultTick = 30 * time.Millisecond

// Adapter recomputes head and eye transforms from the latest pose and
// submits them to the sink.
type Adapter struct {
	recv  Receiver
	sink  TransformSink
	state *head.State
	model *head.Model
	tickD time.Duration

	// dirty marks that the state changed since the last submitted frame.
	dirty bool
}

// NewAdapter creates a render adapter with its own orientation state and
// rest-pose model. A non-positive tick uses DefaultTick.
func NewAdapter(recv Receiver, sink TransformSink, tick time.Duration) *Adapter {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Adapter{
		recv:  recv,
		sink:  sink,
		state: head.NewState(),
		model: head.NewModel(),
		tickD: tick,
	}
}

// Run ticks until ctx is cancelled.
func (a *Adapter) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.tickD)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			a.tick()
		}
	}
}

// tick executes one scheduling cycle: poll once, update state on a good
// decode, and submit a frame when the pose changed. A tick with no datagram
// is a no-op; before the first sample nothing is submitted, so the virtual
// head holds its rest pose instead of snapping.
func (a *Adapter) tick() {
	data, ok, err := a.recv.TryReceive()
	if err != nil {
		log.Warn("poll failed", "error", err)
		return
	}
	if ok {
		sample, err := wire.DecodePose(data)
		if err != nil {
			log.Warn("dropping malformed pose datagram", "bytes", len(data), "error", err)
		} else {
			a.state.Update(sample)
			a.dirty = true
		}
	}

	if !a.dirty {
		return
	}
	sample, ok := a.state.Current()
	if !ok {
		return
	}

	for _, tr := range a.model.Pose(sample) {
		if err := a.sink.SetTransform(tr.Part, tr.Rotation, tr.Translation); err != nil {
			log.Error("transform submit failed", "part", tr.Part, "error", err)
		}
	}
	a.dirty = false
}
