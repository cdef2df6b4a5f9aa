package assets

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/automoto/meadow/assets/animations"
)

// Variant selects one of the avatar's two models.
type Variant int

const (
	VariantIdle Variant = iota
	VariantRun
	VariantCount // Must be last - used for array sizing
)

func (v Variant) String() string {
	switch v {
	case VariantIdle:
		return "idle"
	case VariantRun:
		return "run"
	}
	return "unknown"
}

// Palette colors the avatar model.
type Palette struct {
	Body color.RGBA
	Limb color.RGBA
	Head color.RGBA
}

// Part is a box hinged at Pivot. Swing is its peak rotation about the model X
// axis in radians; the sign picks the half of the cycle it leads.
type Part struct {
	Box   Box
	Pivot math32.Vector3
	Swing float32
}

// Model is a posable box figure standing on the origin and facing +Z.
type Model struct {
	Parts   []Part
	Bob     float32 // vertical bounce amplitude
	BobRate float32 // bounces per clip cycle
	Lean    float32 // forward tilt in radians
}

// AvatarModel builds the figure for v.
func AvatarModel(v Variant, p Palette) Model {
	legSwing, armSwing := float32(0), float32(0.05)
	m := Model{Bob: 0.015, BobRate: 1}
	if v == VariantRun {
		legSwing, armSwing = 0.7, 0.6
		m = Model{Bob: 0.06, BobRate: 2, Lean: 0.15}
	}

	m.Parts = []Part{
		{ // left leg
			Box:   Box{Min: math32.Vec3(-0.2, 0, -0.09), Max: math32.Vec3(-0.04, 0.8, 0.09), Color: p.Limb},
			Pivot: math32.Vec3(-0.12, 0.8, 0),
			Swing: legSwing,
		},
		{ // right leg
			Box:   Box{Min: math32.Vec3(0.04, 0, -0.09), Max: math32.Vec3(0.2, 0.8, 0.09), Color: p.Limb},
			Pivot: math32.Vec3(0.12, 0.8, 0),
			Swing: -legSwing,
		},
		{ // torso
			Box: Box{Min: math32.Vec3(-0.25, 0.8, -0.14), Max: math32.Vec3(0.25, 1.4, 0.14), Color: p.Body},
		},
		{ // left arm
			Box:   Box{Min: math32.Vec3(-0.37, 0.75, -0.06), Max: math32.Vec3(-0.26, 1.38, 0.06), Color: p.Body},
			Pivot: math32.Vec3(-0.31, 1.36, 0),
			Swing: -armSwing,
		},
		{ // right arm
			Box:   Box{Min: math32.Vec3(0.26, 0.75, -0.06), Max: math32.Vec3(0.37, 1.38, 0.06), Color: p.Body},
			Pivot: math32.Vec3(0.31, 1.36, 0),
			Swing: armSwing,
		},
		{ // head
			Box: Box{Min: math32.Vec3(-0.14, 1.44, -0.14), Max: math32.Vec3(0.14, 1.74, 0.14), Color: p.Head},
		},
		{ // visor, marks the facing
			Box: Box{Min: math32.Vec3(-0.1, 1.55, 0.14), Max: math32.Vec3(0.1, 1.62, 0.17), Color: p.Limb},
		},
	}
	return m
}

// Height returns the top of the model's tallest part.
func (m *Model) Height() float32 {
	var h float32
	for i := range m.Parts {
		h = math32.Max(h, m.Parts[i].Box.Max.Y)
	}
	return h
}

// PartMatrix returns the model-space transform of part i at phase in [0, 1).
func (m *Model) PartMatrix(i int, phase float32) math32.Matrix4 {
	s := math32.Sin(phase * 2 * math32.Pi)
	bob := m.Bob * (0.5 + 0.5*math32.Sin(phase*2*math32.Pi*m.BobRate))

	var body math32.Matrix4
	body.SetTransform(math32.Vec3(0, bob, 0), math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), m.Lean), math32.Vec3(1, 1, 1))

	part := &m.Parts[i]
	if part.Swing == 0 {
		return body
	}
	q := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), part.Swing*s)
	var hinge math32.Matrix4
	hinge.SetTransform(part.Pivot.Sub(part.Pivot.MulQuat(q)), q, math32.Vec3(1, 1, 1))

	var out math32.Matrix4
	out.MulMatrices(&body, &hinge)
	return out
}

// AppendModel appends the model posed at phase and placed by world.
func AppendModel(dst []Triangle, m *Model, world *math32.Matrix4, phase float32) []Triangle {
	for i := range m.Parts {
		local := m.PartMatrix(i, phase)
		var full math32.Matrix4
		full.MulMatrices(world, &local)
		dst = AppendBox(dst, m.Parts[i].Box, &full)
	}
	return dst
}

// AvatarClip returns the looping clip that drives v.
func AvatarClip(v Variant, framesPerSecond float32, frames int) *animations.Clip {
	if frames < 1 {
		frames = 1
	}
	return &animations.Clip{
		Name:            v.String(),
		First:           0,
		Last:            frames - 1,
		Step:            1,
		FramesPerSecond: framesPerSecond,
	}
}
