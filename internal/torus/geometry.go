package torus

import "math"

// light points up and toward the viewer. It is not normalized, so
// illumination ranges over [-sqrt(2), sqrt(2)].
var light = vec3{0, 1, -1}

type vec3 struct {
	x, y, z float64
}

func (v vec3) dot(o vec3) float64 {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

// rotateX rotates v about the x axis.
func (v vec3) rotateX(sin, cos float64) vec3 {
	return vec3{v.x, v.y*cos - v.z*sin, v.y*sin + v.z*cos}
}

// rotateZ rotates v about the z axis.
func (v vec3) rotateZ(sin, cos float64) vec3 {
	return vec3{v.x*cos - v.y*sin, v.x*sin + v.y*cos, v.z}
}

// sweep revolves the cross-section point (cx, cy) around the torus axis by phi.
func sweep(cx, cy, sinPhi, cosPhi float64) vec3 {
	return vec3{cx * cosPhi, cy, cx * sinPhi}
}

// transform is the rigid rotation for one frame.
type transform struct {
	sinA, cosA float64
	sinB, cosB float64
}

func newTransform(rot Rotation) transform {
	return transform{
		sinA: math.Sin(rot.A), cosA: math.Cos(rot.A),
		sinB: math.Sin(rot.B), cosB: math.Cos(rot.B),
	}
}

func (t transform) apply(v vec3) vec3 {
	return v.rotateX(t.sinA, t.cosA).rotateZ(t.sinB, t.cosB)
}

// angles samples [0, 2*pi) at multiples of spacing and returns the sines and
// cosines of the samples. There is always at least one sample (angle 0).
func angles(spacing float64) (sin, cos []float64) {
	for i := 0; ; i++ {
		a := float64(i) * spacing
		if a >= 2*math.Pi {
			break
		}
		sin = append(sin, math.Sin(a))
		cos = append(cos, math.Cos(a))
	}
	return sin, cos
}
