package head

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/teslashibe/go-headlink/pkg/wire"
)

// Rotation converts a pose sample into the combined 3x3 head rotation.
//
// The composition is R = Ry(pan) * Rx(tilt): tilt is the inner rotation,
// applied first. Swapping the order changes the meaning of a combined
// pan+tilt pose, so it must be preserved exactly. Angles arrive in degrees
// and may be any real value.
func Rotation(s wire.PoseSample) *mat.Dense {
	pan := float64(s.Pan) * math.Pi / 180
	tilt := float64(s.Tilt) * math.Pi / 180

	ct, st := math.Cos(tilt), math.Sin(tilt)
	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, ct, -st,
		0, st, ct,
	})

	cp, sp := math.Cos(pan), math.Sin(pan)
	ry := mat.NewDense(3, 3, []float64{
		cp, 0, sp,
		0, 1, 0,
		-sp, 0, cp,
	})

	var r mat.Dense
	r.Mul(ry, rx)
	return &r
}

// Apply rotates v by r.
func Apply(r *mat.Dense, v r3.Vec) r3.Vec {
	return r3.Vec{
		X: r.At(0, 0)*v.X + r.At(0, 1)*v.Y + r.At(0, 2)*v.Z,
		Y: r.At(1, 0)*v.X + r.At(1, 1)*v.Y + r.At(1, 2)*v.Z,
		Z: r.At(2, 0)*v.X + r.At(2, 1)*v.Y + r.At(2, 2)*v.Z,
	}
}

// Identity returns the 3x3 identity rotation.
func Identity() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}
