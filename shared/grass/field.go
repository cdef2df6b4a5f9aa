// Package grass animates a fixed-size field of instanced grass blades.
package grass

import (
	"math/rand/v2"

	"cogentcore.org/core/math32"
)

// DefaultWindStrength is the amplitude of the wind noise.
const DefaultWindStrength = 0.3

// Instance is the transform of one blade.
// Position.X/Z, RotationY and Scale are fixed at construction;
// Position.Y and RotationZ are rewritten by Advance.
type Instance struct {
	Position  math32.Vector3
	RotationY float32
	RotationZ float32
	Scale     math32.Vector3
}

// Params describes the field to generate.
type Params struct {
	Count        int
	Side         float32 // side length of the square footprint, centered on the origin
	Variation    float32 // width/depth scale band: 1 ± Variation/2
	WindStrength *float32 // nil means DefaultWindStrength; zero is calm
}

// Field owns the per-instance transforms of one batch of blades.
type Field struct {
	instances []Instance
	wind      float32

	dirty   bool
	version uint64
}

// New populates a field once. No reseeding happens afterwards.
func New(p Params, rng *rand.Rand) *Field {
	n := p.Count
	if n < 0 {
		n = 0
	}
	wind := float32(DefaultWindStrength)
	if p.WindStrength != nil {
		wind = max(*p.WindStrength, 0)
	}

	f := &Field{
		instances: make([]Instance, n),
		wind:      wind,
		dirty:     true,
	}

	half := p.Side / 2
	for i := range f.instances {
		in := &f.instances[i]
		in.Position = math32.Vec3(
			uniform(rng, -half, half),
			0,
			uniform(rng, -half, half),
		)
		in.RotationY = rng.Float32() * 2 * math32.Pi

		// Width and depth vary both ways; height only grows.
		xz := 1 + (rng.Float32()-0.5)*p.Variation
		in.Scale = math32.Vec3(xz, 1+rng.Float32()*0.5, xz)
	}
	return f
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// Len returns the instance count.
func (f *Field) Len() int {
	return len(f.instances)
}

// Instances exposes the transforms. Callers must not resize the slice.
func (f *Field) Instances() []Instance {
	return f.instances
}

// Advance recomputes the wind sway for absolute time t (seconds since start).
// The result is a pure function of (t, i).
func (f *Field) Advance(t float32) {
	for i := range f.instances {
		noise := math32.Sin(t*2+float32(i)*0.1) * f.wind
		f.instances[i].RotationZ = noise * 0.2
		f.instances[i].Position.Y = math32.Abs(noise) * 0.1
	}
	if len(f.instances) > 0 {
		f.dirty = true
		f.version++
	}
}

// Dirty reports whether the instance buffer needs a re-upload.
func (f *Field) Dirty() bool {
	return f.dirty
}

// Version counts the Advance passes that touched at least one instance.
func (f *Field) Version() uint64 {
	return f.version
}

// WindStrength returns the sway amplitude.
func (f *Field) WindStrength() float32 {
	return f.wind
}

// SetWindStrength changes the sway amplitude used by the next Advance.
// Zero stills the field; negative values are treated as zero.
func (f *Field) SetWindStrength(w float32) {
	f.wind = max(w, 0)
}

// Matrix returns the model matrix of instance i.
func (f *Field) Matrix(i int) math32.Matrix4 {
	in := &f.instances[i]
	var q math32.Quat
	q.SetFromEuler(math32.Vec3(0, in.RotationY, in.RotationZ))
	var m math32.Matrix4
	m.SetTransform(in.Position, q, in.Scale)
	return m
}

// InstanceMatrices writes the instance buffer into dst, growing it as needed,
// and clears the dirty flag.
func (f *Field) InstanceMatrices(dst []math32.Matrix4) []math32.Matrix4 {
	if cap(dst) < len(f.instances) {
		dst = make([]math32.Matrix4, len(f.instances))
	}
	dst = dst[:len(f.instances)]
	for i := range f.instances {
		dst[i] = f.Matrix(i)
	}
	f.dirty = false
	return dst
}
