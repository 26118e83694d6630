package actuator

import (
	"github.com/teslashibe/go-headlink/internal/log"
	"github.com/teslashibe/go-headlink/pkg/head"
	"github.com/teslashibe/go-headlink/pkg/wire"
)

// Config holds actuator adapter configuration.
type Config struct {
	// PanJoint and TiltJoint are the joint names commanded for each
	// sample. The daemon's positional names vary between robots, so they
	// are configuration, not constants.
	PanJoint  string
	TiltJoint string

	// Limits, when non-nil, clamps samples before commanding. Nil means
	// pass-through.
	Limits *Limits
}

// DefaultConfig returns the standard head joint names with no clamping.
func DefaultConfig() Config {
	return Config{
		PanJoint:  "head_pan",
		TiltJoint: "head_tilt",
	}
}

// Adapter applies every successfully decoded pose sample to the physical
// head as two independent joint commands.
type Adapter struct {
	joints JointSetter
	state  *head.State
	cfg    Config
}

// NewAdapter creates an actuator adapter with its own orientation state.
func NewAdapter(joints JointSetter, cfg Config) *Adapter {
	return &Adapter{
		joints: joints,
		state:  head.NewState(),
		cfg:    cfg,
	}
}

// HandleDatagram decodes one pose datagram and applies it. Malformed
// datagrams are dropped without touching the held state; the caller's
// receive loop always continues.
func (a *Adapter) HandleDatagram(data []byte) {
	sample, err := wire.DecodePose(data)
	if err != nil {
		log.Warn("dropping malformed pose datagram", "bytes", len(data), "error", err)
		return
	}
	a.Apply(sample)
}

// Apply commands the pan and tilt joints for one sample. The two commands
// are independent: a failed pan command is logged and tilt is still
// attempted. There is no batching and no retry.
func (a *Adapter) Apply(sample wire.PoseSample) {
	a.state.Update(sample)

	cmd := sample
	if a.cfg.Limits != nil {
		cmd = a.cfg.Limits.Clamp(sample)
	}

	log.Debug("pose received", "pan", cmd.Pan, "tilt", cmd.Tilt)

	if err := a.joints.SetJointPosition(a.cfg.PanJoint, float64(cmd.Pan)); err != nil {
		log.Error("pan command failed", "joint", a.cfg.PanJoint, "degrees", cmd.Pan, "error", err)
	}
	if err := a.joints.SetJointPosition(a.cfg.TiltJoint, float64(cmd.Tilt)); err != nil {
		log.Error("tilt command failed", "joint", a.cfg.TiltJoint, "degrees", cmd.Tilt, "error", err)
	}
}

// Current returns the latest applied sample, if any.
func (a *Adapter) Current() (wire.PoseSample, bool) {
	return a.state.Current()
}
