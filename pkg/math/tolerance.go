package math

import "gonum.org/v1/gonum/floats/scalar"

// Tolerances used by every approximate comparison in the package.
// Two values compare equal when they are within AbsTolerance of each other or
// within RelTolerance relative to the larger magnitude.
const (
	AbsTolerance = 1e-9
	RelTolerance = 1e-9
)

// ApproxEqual reports whether a and b are equal under the package tolerance
func ApproxEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, AbsTolerance, RelTolerance)
}

// IsZero reports whether the vector's magnitude is approximately 0
func (v *Vector3) IsZero() bool {
	return ApproxEqual(v.Magnitude(), 0)
}

// IsUnit reports whether the vector's magnitude is approximately 1
func (v *Vector3) IsUnit() bool {
	return ApproxEqual(v.Magnitude(), 1)
}

// IsParallel reports whether the two vectors are parallel or anti-parallel.
// A zero vector is parallel to everything.
func (v *Vector3) IsParallel(other *Vector3) bool {
	return v.Cross(other).IsZero()
}

// IsPerpendicular reports whether the dot product is approximately 0
func (v *Vector3) IsPerpendicular(other *Vector3) bool {
	return ApproxEqual(v.Dot(other), 0)
}
