package math

import "gonum.org/v1/gonum/spatial/r3"

// gonum's r3 package serves as an independent reference for the products and
// rotation.

func toR3(v *Vector3) r3.Vec {
	x, y, z := v.coords()
	return r3.Vec{X: x, Y: y, Z: z}
}

func fromR3(v r3.Vec) *Vector3 {
	return NewVector3(v.X, v.Y, v.Z)
}
