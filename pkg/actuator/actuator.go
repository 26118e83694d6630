// Package actuator drives physical head joints from decoded pose samples.
//
// It follows the Interface Segregation Principle: consumers depend on the
// minimal JointSetter capability, not on a concrete transport.
package actuator

import "github.com/teslashibe/go-headlink/pkg/wire"

// JointSetter sets a single named joint to an absolute angle in degrees.
type JointSetter interface {
	SetJointPosition(joint string, degrees float64) error
}

// Limits is an optional symmetric clamp applied before commanding joints.
// Whether hardware needs clamping is deployment-specific, so it is a
// configuration policy; the zero default is pass-through.
type Limits struct {
	MaxPan  float64 // ± degrees
	MaxTilt float64 // ± degrees
}

// Clamp restricts the sample to the configured range.
func (l Limits) Clamp(s wire.PoseSample) wire.PoseSample {
	return wire.PoseSample{
		Pan:  float32(clamp(float64(s.Pan), -l.MaxPan, l.MaxPan)),
		Tilt: float32(clamp(float64(s.Tilt), -l.MaxTilt, l.MaxTilt)),
	}
}

// clamp restricts v to the range [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
