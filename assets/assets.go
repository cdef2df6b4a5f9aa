// Package assets builds the procedural geometry of the meadow scene: ground
// tiles, grass blades and the avatar's box model. Nothing is loaded from disk.
package assets

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Triangle is one face in world space with a color per vertex.
type Triangle struct {
	V      [3]math32.Vector3
	C      [3]color.RGBA
	Normal math32.Vector3
	// TwoSided faces are drawn from both sides and lit by |n·l|.
	TwoSided bool
}

// Center returns the centroid of the triangle.
func (t *Triangle) Center() math32.Vector3 {
	return t.V[0].Add(t.V[1]).Add(t.V[2]).DivScalar(3)
}

// Box is an axis-aligned cuboid in model space.
type Box struct {
	Min   math32.Vector3
	Max   math32.Vector3
	Color color.RGBA
}

// boxFaces lists each face as four corner selectors (0 = Min, 1 = Max per
// axis) wound counter-clockwise seen from outside, plus its outward normal.
var boxFaces = [6]struct {
	corners [4][3]int
	normal  math32.Vector3
}{
	{[4][3]int{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}, math32.Vec3(1, 0, 0)},
	{[4][3]int{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}}, math32.Vec3(-1, 0, 0)},
	{[4][3]int{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}, math32.Vec3(0, 1, 0)},
	{[4][3]int{{0, 0, 1}, {0, 0, 0}, {1, 0, 0}, {1, 0, 1}}, math32.Vec3(0, -1, 0)},
	{[4][3]int{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, math32.Vec3(0, 0, 1)},
	{[4][3]int{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}, math32.Vec3(0, 0, -1)},
}

func (b *Box) corner(sel [3]int) math32.Vector3 {
	pick := func(s int, lo, hi float32) float32 {
		if s == 0 {
			return lo
		}
		return hi
	}
	return math32.Vec3(
		pick(sel[0], b.Min.X, b.Max.X),
		pick(sel[1], b.Min.Y, b.Max.Y),
		pick(sel[2], b.Min.Z, b.Max.Z),
	)
}

// AppendBox appends the twelve triangles of b transformed by m.
func AppendBox(dst []Triangle, b Box, m *math32.Matrix4) []Triangle {
	for _, f := range boxFaces {
		var p [4]math32.Vector3
		for i, sel := range f.corners {
			p[i] = b.corner(sel).MulMatrix4AsVector4(m, 1)
		}
		n := f.normal.MulMatrix4AsVector4(m, 0).Normal()
		c := [3]color.RGBA{b.Color, b.Color, b.Color}
		dst = append(dst,
			Triangle{V: [3]math32.Vector3{p[0], p[1], p[2]}, C: c, Normal: n},
			Triangle{V: [3]math32.Vector3{p[0], p[2], p[3]}, C: c, Normal: n},
		)
	}
	return dst
}

// AppendBlade appends one grass blade transformed by its instance matrix.
// The blade is a tapered quad topped by a tip triangle, base at the origin,
// facing +Z before rotation.
func AppendBlade(dst []Triangle, m *math32.Matrix4, width, height float32, base, tip color.RGBA) []Triangle {
	hw := width / 2
	mid := height * 0.55
	midColor := Blend(base, tip, 0.55)

	bl := math32.Vec3(-hw, 0, 0).MulMatrix4AsVector4(m, 1)
	br := math32.Vec3(hw, 0, 0).MulMatrix4AsVector4(m, 1)
	ml := math32.Vec3(-hw*0.6, mid, 0).MulMatrix4AsVector4(m, 1)
	mr := math32.Vec3(hw*0.6, mid, 0).MulMatrix4AsVector4(m, 1)
	t := math32.Vec3(0, height, 0).MulMatrix4AsVector4(m, 1)
	n := math32.Vec3(0, 0, 1).MulMatrix4AsVector4(m, 0).Normal()

	return append(dst,
		Triangle{V: [3]math32.Vector3{bl, br, mr}, C: [3]color.RGBA{base, base, midColor}, Normal: n, TwoSided: true},
		Triangle{V: [3]math32.Vector3{bl, mr, ml}, C: [3]color.RGBA{base, midColor, midColor}, Normal: n, TwoSided: true},
		Triangle{V: [3]math32.Vector3{ml, mr, t}, C: [3]color.RGBA{midColor, midColor, tip}, Normal: n, TwoSided: true},
	)
}

// AppendGround appends a size x size checkerboard of tiles x tiles squares at
// height y, centered on the origin.
func AppendGround(dst []Triangle, size float32, tiles int, y float32, a, b color.RGBA) []Triangle {
	if tiles <= 0 {
		return dst
	}
	step := size / float32(tiles)
	half := size / 2
	up := math32.Vec3(0, 1, 0)
	for i := 0; i < tiles; i++ {
		for j := 0; j < tiles; j++ {
			x0 := -half + float32(i)*step
			z0 := -half + float32(j)*step
			p0 := math32.Vec3(x0, y, z0)
			p1 := math32.Vec3(x0, y, z0+step)
			p2 := math32.Vec3(x0+step, y, z0+step)
			p3 := math32.Vec3(x0+step, y, z0)
			col := a
			if (i+j)%2 == 1 {
				col = b
			}
			c := [3]color.RGBA{col, col, col}
			dst = append(dst,
				Triangle{V: [3]math32.Vector3{p0, p1, p2}, C: c, Normal: up},
				Triangle{V: [3]math32.Vector3{p0, p2, p3}, C: c, Normal: up},
			)
		}
	}
	return dst
}

// Blend linearly mixes a toward b by t in [0, 1].
func Blend(a, b color.RGBA, t float32) color.RGBA {
	t = math32.Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Lambert returns the diffuse light factor for a surface with normal n lit by
// a directional light travelling along dir.
func Lambert(n, dir math32.Vector3, ambient, intensity float32, twoSided bool) float32 {
	d := -n.Dot(dir)
	if twoSided {
		d = math32.Abs(d)
	}
	return math32.Min(ambient+intensity*math32.Max(d, 0), 1)
}

// Shade scales the RGB channels of c by k.
func Shade(c color.RGBA, k float32) color.RGBA {
	s := func(x uint8) uint8 {
		return uint8(math32.Clamp(float32(x)*k, 0, 255))
	}
	return color.RGBA{R: s(c.R), G: s(c.G), B: s(c.B), A: c.A}
}
