// Package math provides small numeric types and special functions shared by the
// mesh and distribution packages.
package math

import (
	"fmt"
	"math"
)

// Vec3 is a single-precision 3D point, the native precision of STL vertices.
type Vec3 struct {
	X, Y, Z float32
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Min returns the component-wise minimum of v and other.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of v and other.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// String formats the vector with six decimals per component.
func (v Vec3) String() string {
	return fmt.Sprintf("%.6f %.6f %.6f", v.X, v.Y, v.Z)
}

// Inf returns a vector with every component set to +Inf (sign >= 0) or -Inf.
func Inf(sign int) Vec3 {
	f := float32(math.Inf(sign))
	return Vec3{f, f, f}
}
