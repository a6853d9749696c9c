package mathx

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is an immutable 3-component value. Arithmetic (Add, Sub, Mul, Dot)
// returns new values and never mutates the receiver.
type Vector3 = mgl64.Vec3

// Vec builds a Vector3 from its components.
func Vec(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// CollisionPoint names the face a moving body hits first.
type CollisionPoint int

const (
	PositiveX CollisionPoint = iota
	NegativeX
	PositiveY
	NegativeY
	PositiveZ
	NegativeZ
)

func (c CollisionPoint) String() string {
	switch c {
	case PositiveX:
		return "+x"
	case NegativeX:
		return "-x"
	case PositiveY:
		return "+y"
	case NegativeY:
		return "-y"
	case PositiveZ:
		return "+z"
	case NegativeZ:
		return "-z"
	default:
		return "unknown"
	}
}

// DominantAxis returns the signed axis with the largest magnitude in v.
// Ties resolve to the lower axis index; the zero vector reports +x.
func DominantAxis(v Vector3) CollisionPoint {
	index := 0
	max := 0.0
	for i := 0; i < 3; i++ {
		if abs := math.Abs(v[i]); abs > max {
			index = i
			max = abs
		}
	}
	switch index {
	case 0:
		if v.X() < 0 {
			return NegativeX
		}
		return PositiveX
	case 1:
		if v.Y() < 0 {
			return NegativeY
		}
		return PositiveY
	default:
		if v.Z() < 0 {
			return NegativeZ
		}
		return PositiveZ
	}
}

// RotateX rotates v about the X axis by radians, right-handed.
func RotateX(v Vector3, radians float64) Vector3 {
	return mgl64.Rotate3DX(radians).Mul3x1(v)
}

// RotateY rotates v about the Y axis by radians, right-handed.
func RotateY(v Vector3, radians float64) Vector3 {
	return mgl64.Rotate3DY(radians).Mul3x1(v)
}

// RotateZ rotates v about the Z axis by radians, right-handed.
func RotateZ(v Vector3, radians float64) Vector3 {
	return mgl64.Rotate3DZ(radians).Mul3x1(v)
}

// Distance2D is the planar distance between (a1, a2) and (b1, b2).
func Distance2D(a1, a2, b1, b2 float64) float64 {
	return math.Hypot(b1-a1, b2-a2)
}
