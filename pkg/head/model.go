package head

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/teslashibe/go-headlink/pkg/wire"
)

// Part names emitted by Model.Pose.
const (
	PartHead     = "head"
	PartLeftEye  = "eye_left"
	PartRightEye = "eye_right"
)

// Eye placement on the unit head sphere, in head-local rest coordinates.
// Polar angle is measured from the vertical axis; the azimuths are mirror
// images so the eyes are left/right symmetric.
const (
	eyePolarDeg        = 30
	leftEyeAzimuthDeg  = 150
	rightEyeAzimuthDeg = 30
	eyeRadius          = 1.0
)

// Transform is one rigid part pose: a rotation about the world origin and a
// world-space translation, ready to hand to a render surface.
type Transform struct {
	Part        string
	Rotation    *mat.Dense
	Translation r3.Vec
}

// Model is the rigid head structure: a head anchored at a fixed world
// origin plus two eye anchors at fixed rest offsets. The rest offsets are
// computed once; per-frame poses always re-derive eye positions from them
// so repeated rotation never accumulates drift.
type Model struct {
	origin   r3.Vec
	leftEye  r3.Vec
	rightEye r3.Vec
}

// NewModel builds the rest-pose model with the head centred at the world
// origin.
func NewModel() *Model {
	return &Model{
		leftEye:  sphericalOffset(eyeRadius, eyePolarDeg, leftEyeAzimuthDeg),
		rightEye: sphericalOffset(eyeRadius, eyePolarDeg, rightEyeAzimuthDeg),
	}
}

// sphericalOffset converts (radius, polar, azimuth) in degrees to a
// cartesian offset.
func sphericalOffset(radius, polarDeg, azimuthDeg float64) r3.Vec {
	theta := polarDeg * math.Pi / 180
	phi := azimuthDeg * math.Pi / 180
	return r3.Vec{
		X: radius * math.Sin(theta) * math.Cos(phi),
		Y: radius * math.Sin(theta) * math.Sin(phi),
		Z: radius * math.Cos(theta),
	}
}

// RestOffsets returns the fixed head-local eye offsets.
func (m *Model) RestOffsets() (left, right r3.Vec) {
	return m.leftEye, m.rightEye
}

// Pose derives the world transform of every part for the given sample.
//
// The head rotates in place about its origin; it never translates. Each eye
// sits at origin + R * restOffset, recomputed from the rest offset every
// call so the result depends only on the sample, not on any previous pose.
func (m *Model) Pose(s wire.PoseSample) []Transform {
	r := Rotation(s)
	return []Transform{
		{Part: PartHead, Rotation: r, Translation: m.origin},
		{Part: PartLeftEye, Rotation: r, Translation: r3.Add(m.origin, Apply(r, m.leftEye))},
		{Part: PartRightEye, Rotation: r, Translation: r3.Add(m.origin, Apply(r, m.rightEye))},
	}
}
