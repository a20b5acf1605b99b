// Package math provides the Vector3 value type and the linear algebra built on it.
package math

import (
	"math"
	"strconv"
	"strings"
	"sync"
)

// Vector3 represents a vector in 3-dimensional space.
//
// The zero value is the zero vector and is ready to use. A Vector3 carries a
// lock and must be passed by pointer; every operation returns a new vector and
// leaves its operands untouched. A nil *Vector3 reads as the zero vector, but
// the setters require a non-nil receiver.
type Vector3 struct {
	mu sync.Mutex

	x, y, z float64

	magnitude      float64
	magnitudeValid bool
}

// NewVector3 creates a new vector with the given coordinates
func NewVector3(x, y, z float64) *Vector3 {
	return &Vector3{x: x, y: y, z: z}
}

// Zero returns a new zero vector
func Zero() *Vector3 {
	return &Vector3{}
}

// coords reads all three coordinates under the lock.
func (v *Vector3) coords() (x, y, z float64) {
	if v == nil {
		return 0, 0, 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.x, v.y, v.z
}

// X returns the x coordinate
func (v *Vector3) X() float64 {
	x, _, _ := v.coords()
	return x
}

// Y returns the y coordinate
func (v *Vector3) Y() float64 {
	_, y, _ := v.coords()
	return y
}

// Z returns the z coordinate
func (v *Vector3) Z() float64 {
	_, _, z := v.coords()
	return z
}

// SetX assigns the x coordinate and drops the cached magnitude
func (v *Vector3) SetX(x float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.x = x
	v.magnitudeValid = false
}

// SetY assigns the y coordinate and drops the cached magnitude
func (v *Vector3) SetY(y float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.y = y
	v.magnitudeValid = false
}

// SetZ assigns the z coordinate and drops the cached magnitude
func (v *Vector3) SetZ(z float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.z = z
	v.magnitudeValid = false
}

// Magnitude returns the length of the vector.
// The value is computed on first use and cached until a coordinate changes.
func (v *Vector3) Magnitude() float64 {
	if v == nil {
		return 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.magnitudeValid {
		v.magnitude = math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
		v.magnitudeValid = true
	}
	return v.magnitude
}

// ToTuple returns the coordinates as an ordered triple
func (v *Vector3) ToTuple() [3]float64 {
	x, y, z := v.coords()
	return [3]float64{x, y, z}
}

// Add returns the sum of the vector and all others
func (v *Vector3) Add(others ...*Vector3) *Vector3 {
	x, y, z := v.coords()
	for _, o := range others {
		ox, oy, oz := o.coords()
		x, y, z = x+ox, y+oy, z+oz
	}
	return NewVector3(x, y, z)
}

// Sub returns the vector minus the sum of all others
func (v *Vector3) Sub(others ...*Vector3) *Vector3 {
	var sx, sy, sz float64
	for _, o := range others {
		ox, oy, oz := o.coords()
		sx, sy, sz = sx+ox, sy+oy, sz+oz
	}
	x, y, z := v.coords()
	return NewVector3(x-sx, y-sy, z-sz)
}

// Scale returns the vector scaled by a scalar
func (v *Vector3) Scale(s float64) *Vector3 {
	x, y, z := v.coords()
	return NewVector3(x*s, y*s, z*s)
}

// Mul returns s*v. It is the scalar-first form of Scale.
func Mul(s float64, v *Vector3) *Vector3 {
	return v.Scale(s)
}

// Neg returns the opposite vector
func (v *Vector3) Neg() *Vector3 {
	return v.Scale(-1)
}

// Dot returns the dot product of two vectors
func (v *Vector3) Dot(other *Vector3) float64 {
	x1, y1, z1 := v.coords()
	x2, y2, z2 := other.coords()
	return x1*x2 + y1*y2 + z1*z2
}

// Cross returns the cross product of two vectors
func (v *Vector3) Cross(other *Vector3) *Vector3 {
	x1, y1, z1 := v.coords()
	x2, y2, z2 := other.coords()
	return NewVector3(
		y1*z2-z1*y2,
		z1*x2-x1*z2,
		x1*y2-y1*x2,
	)
}

// TripleScalar returns v · (a × b), the signed volume of the parallelepiped
// spanned by the three vectors.
func (v *Vector3) TripleScalar(a, b *Vector3) float64 {
	return v.Dot(a.Cross(b))
}

// TripleVector returns v × (a × b), evaluated as a(v·b) - b(v·a).
func (v *Vector3) TripleVector(a, b *Vector3) *Vector3 {
	return a.Scale(v.Dot(b)).Sub(b.Scale(v.Dot(a)))
}

// Distance returns the distance between two vectors
func (v *Vector3) Distance(other *Vector3) float64 {
	return v.Sub(other).Magnitude()
}

// Equal reports whether each coordinate pair is approximately equal
func (v *Vector3) Equal(other *Vector3) bool {
	x1, y1, z1 := v.coords()
	x2, y2, z2 := other.coords()
	return ApproxEqual(x1, x2) && ApproxEqual(y1, y2) && ApproxEqual(z1, z2)
}

// String renders the vector as (x, y, z)
func (v *Vector3) String() string {
	x, y, z := v.coords()
	return "(" + formatCoord(x) + ", " + formatCoord(y) + ", " + formatCoord(z) + ")"
}

// GoString renders the vector as a labeled constructor call; used by %#v.
func (v *Vector3) GoString() string {
	x, y, z := v.coords()
	return "Vector3(x=" + formatCoord(x) + ", y=" + formatCoord(y) + ", z=" + formatCoord(z) + ")"
}

// formatCoord prints the shortest representation, keeping a trailing ".0" on
// integral values so coordinates always read as floats.
func formatCoord(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
