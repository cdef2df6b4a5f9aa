package view

import (
	"cmp"
	"image/color"
	"slices"

	"cogentcore.org/core/math32"
)

// Vertex is a projected corner with its color in [0, 1] channels.
type Vertex struct {
	X, Y       float32
	R, G, B, A float32
}

// Face is a screen-space triangle ready to fill.
type Face struct {
	V     [3]Vertex
	Depth float32 // mean view distance, larger is farther
}

// Queue collects projected faces for painter-ordered drawing.
type Queue struct {
	faces []Face
}

// Reset empties the queue and keeps its storage.
func (q *Queue) Reset() {
	q.faces = q.faces[:0]
}

// Len returns the number of queued faces.
func (q *Queue) Len() int {
	return len(q.faces)
}

// Faces returns the queued faces in their current order.
func (q *Queue) Faces() []Face {
	return q.faces
}

// Sort orders faces far to near.
func (q *Queue) Sort() {
	slices.SortStableFunc(q.faces, func(a, b Face) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}

type clipVertex struct {
	pos  math32.Vector4
	rgba [4]float32
}

func toRGBA(c color.RGBA) [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

func lerpClip(a, b clipVertex, t float32) clipVertex {
	var out clipVertex
	out.pos = math32.Vector4{
		X: a.pos.X + (b.pos.X-a.pos.X)*t,
		Y: a.pos.Y + (b.pos.Y-a.pos.Y)*t,
		Z: a.pos.Z + (b.pos.Z-a.pos.Z)*t,
		W: a.pos.W + (b.pos.W-a.pos.W)*t,
	}
	for i := range out.rgba {
		out.rgba[i] = a.rgba[i] + (b.rgba[i]-a.rgba[i])*t
	}
	return out
}

// clipNear clips a polygon against the w = near plane. The result has at most
// one more vertex than the input.
func clipNear(in []clipVertex, near float32, out []clipVertex) []clipVertex {
	out = out[:0]
	for i := range in {
		a := in[i]
		b := in[(i+1)%len(in)]
		aIn := a.pos.W >= near
		bIn := b.pos.W >= near
		if aIn {
			out = append(out, a)
		}
		if aIn != bIn {
			t := (near - a.pos.W) / (b.pos.W - a.pos.W)
			out = append(out, lerpClip(a, b, t))
		}
	}
	return out
}

// Add projects a world triangle through c and queues it. One-sided triangles
// facing away from the eye are culled; parts behind the near plane are
// clipped. It reports whether anything was queued.
func (q *Queue) Add(c *Camera, v [3]math32.Vector3, col [3]color.RGBA, normal math32.Vector3, twoSided bool) bool {
	if !twoSided && normal.Dot(c.Eye.Sub(v[0])) <= 0 {
		return false
	}

	var in [3]clipVertex
	for i := range v {
		in[i] = clipVertex{
			pos:  math32.Vector4FromVector3(v[i], 1).MulMatrix4(&c.viewProj),
			rgba: toRGBA(col[i]),
		}
	}
	var buf [4]clipVertex
	poly := clipNear(in[:], c.Near, buf[:0])
	if len(poly) < 3 {
		return false
	}

	var pts [4]Vertex
	var depth float32
	w, h := float32(c.Width), float32(c.Height)
	left, right, above, below := true, true, true, true
	for i, cv := range poly {
		ndc := cv.pos.PerspDiv()
		p := Vertex{
			X: (ndc.X + 1) * 0.5 * w,
			Y: (1 - ndc.Y) * 0.5 * h,
			R: cv.rgba[0], G: cv.rgba[1], B: cv.rgba[2], A: cv.rgba[3],
		}
		left = left && p.X < 0
		right = right && p.X > w
		above = above && p.Y < 0
		below = below && p.Y > h
		pts[i] = p
		depth += cv.pos.W
	}
	if left || right || above || below {
		return false
	}
	depth /= float32(len(poly))

	for i := 2; i < len(poly); i++ {
		q.faces = append(q.faces, Face{V: [3]Vertex{pts[0], pts[i-1], pts[i]}, Depth: depth})
	}
	return true
}
