package math

import (
	"math"

	errorsmod "cosmossdk.io/errors"
)

// Normalize returns a unit vector in the same direction
func (v *Vector3) Normalize() (*Vector3, error) {
	mag := v.Magnitude()
	if ApproxEqual(mag, 0) {
		return nil, errorsmod.Wrap(ErrZeroVector, "cannot normalize")
	}
	return v.Scale(1 / mag), nil
}

// Projection projects the vector onto other
func (v *Vector3) Projection(other *Vector3) (*Vector3, error) {
	mag := other.Magnitude()
	magSq := mag * mag
	if ApproxEqual(magSq, 0) {
		return nil, errorsmod.Wrap(ErrZeroVector, "cannot project onto")
	}
	return other.Scale(v.Dot(other) / magSq), nil
}

// Rejection returns the component of the vector orthogonal to other
func (v *Vector3) Rejection(other *Vector3) (*Vector3, error) {
	proj, err := v.Projection(other)
	if err != nil {
		return nil, errorsmod.Wrap(err, "rejection")
	}
	return v.Sub(proj), nil
}

// Reflect mirrors the vector across the plane perpendicular to normal
func (v *Vector3) Reflect(normal *Vector3) (*Vector3, error) {
	proj, err := v.Projection(normal)
	if err != nil {
		return nil, errorsmod.Wrap(err, "reflect")
	}
	return v.Sub(proj.Scale(2)), nil
}

// AngleBetween returns the smallest angle between the two vectors, in degrees
// when degrees is set and in radians otherwise.
func (v *Vector3) AngleBetween(other *Vector3, degrees bool) (float64, error) {
	if v.IsZero() || other.IsZero() {
		return 0, errorsmod.Wrap(ErrZeroVector, "cannot compute angle with")
	}
	magProduct := v.Magnitude() * other.Magnitude()
	// rounding can push the cosine just outside [-1, 1]
	cosTheta := math.Max(-1, math.Min(1, v.Dot(other)/magProduct))
	theta := math.Acos(cosTheta)
	if degrees {
		return radToDeg(theta), nil
	}
	return theta, nil
}

// RotateAround rotates the vector around axis by angle using Rodrigues'
// rotation formula. The axis does not need to be normalized.
func (v *Vector3) RotateAround(axis *Vector3, angle float64, degrees bool) (*Vector3, error) {
	if degrees {
		angle = degToRad(angle)
	}
	k, err := axis.Normalize()
	if err != nil {
		return nil, errorsmod.Wrap(err, "rotation axis")
	}
	cos, sin := math.Cos(angle), math.Sin(angle)
	return v.Scale(cos).Add(
		k.Cross(v).Scale(sin),
		k.Scale(k.Dot(v)*(1-cos)),
	), nil
}

// Lerp linearly interpolates between the vector (t=0) and other (t=1).
// Values of t outside [0, 1] extrapolate.
func (v *Vector3) Lerp(other *Vector3, t float64) *Vector3 {
	return v.Scale(1 - t).Add(other.Scale(t))
}

// DirectionCosine returns the cosines of the angles between the vector and the
// x, y and z axes. ok is false when the vector is zero, where the cosines are
// undefined.
func (v *Vector3) DirectionCosine() (cosines [3]float64, ok bool) {
	mag := v.Magnitude()
	if ApproxEqual(mag, 0) {
		return cosines, false
	}
	x, y, z := v.coords()
	return [3]float64{x / mag, y / mag, z / mag}, true
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }
