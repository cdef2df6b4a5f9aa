package grass

import (
	"math/rand/v2"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func newTestField(count int) *Field {
	return New(Params{Count: count, Side: 30, Variation: 0.4}, rand.New(rand.NewPCG(7, 11)))
}

func TestNewPopulation(t *testing.T) {
	cases := []struct {
		name      string
		count     int
		side      float32
		variation float32
	}{
		{"empty", 0, 30, 0.4},
		{"negative_count", -5, 30, 0.4},
		{"small", 3, 10, 0.2},
		{"large", 5000, 60, 0.8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := New(Params{Count: c.count, Side: c.side, Variation: c.variation}, rand.New(rand.NewPCG(1, 2)))

			want := max(c.count, 0)
			require.Equal(t, want, f.Len())

			half := c.side / 2
			for i, in := range f.Instances() {
				assert.GreaterOrEqual(t, in.Scale.Y, float32(1), "instance %d", i)
				assert.LessOrEqual(t, in.Scale.Y, float32(1.5), "instance %d", i)
				assert.InDelta(t, 1, in.Scale.X, float64(c.variation/2)+tol, "instance %d", i)
				assert.InDelta(t, 1, in.Scale.Z, float64(c.variation/2)+tol, "instance %d", i)

				assert.InDelta(t, 0, in.Position.X, float64(half), "instance %d", i)
				assert.InDelta(t, 0, in.Position.Z, float64(half), "instance %d", i)
				assert.Zero(t, in.Position.Y)

				assert.GreaterOrEqual(t, in.RotationY, float32(0))
				assert.Less(t, in.RotationY, float32(2*math32.Pi)+tol)
			}
		})
	}
}

func TestAdvanceAtZero(t *testing.T) {
	f := newTestField(3)
	f.Advance(0)

	// sin(i*0.1) is nonzero for i > 0, so only instance 0 is at rest.
	in := f.Instances()[0]
	assert.InDelta(t, 0, in.RotationZ, tol)
	assert.InDelta(t, 0, in.Position.Y, tol)

	for i, in := range f.Instances() {
		noise := math32.Sin(float32(i)*0.1) * DefaultWindStrength
		assert.InDelta(t, noise*0.2, in.RotationZ, tol)
		assert.InDelta(t, math32.Abs(noise)*0.1, in.Position.Y, tol)
	}
}

func TestAdvanceQuarterPi(t *testing.T) {
	f := newTestField(3)
	f.Advance(math32.Pi / 4)

	in := f.Instances()[0]
	// sin(pi/2) * 0.3 = 0.3
	assert.InDelta(t, 0.03, in.Position.Y, tol)
	assert.InDelta(t, 0.06, in.RotationZ, tol)
}

func TestAdvanceIsPureInTime(t *testing.T) {
	f := newTestField(64)

	f.Advance(1.25)
	first := append([]Instance(nil), f.Instances()...)

	f.Advance(7.5)
	f.Advance(1.25)
	assert.Equal(t, first, f.Instances())
}

func TestAdvanceKeepsConstructionFields(t *testing.T) {
	f := newTestField(128)
	before := append([]Instance(nil), f.Instances()...)

	for _, tm := range []float32{0, 0.016, 1, 42.5, 1000} {
		f.Advance(tm)
	}

	for i, in := range f.Instances() {
		assert.Equal(t, before[i].Position.X, in.Position.X)
		assert.Equal(t, before[i].Position.Z, in.Position.Z)
		assert.Equal(t, before[i].RotationY, in.RotationY)
		assert.Equal(t, before[i].Scale, in.Scale)
	}
}

func TestDirtyIsBatchedPerPass(t *testing.T) {
	f := newTestField(10)
	buf := f.InstanceMatrices(nil)
	require.Len(t, buf, 10)
	assert.False(t, f.Dirty())

	f.Advance(0.5)
	assert.True(t, f.Dirty())
	assert.Equal(t, uint64(1), f.Version())

	buf = f.InstanceMatrices(buf)
	assert.False(t, f.Dirty())
	assert.Len(t, buf, 10)
}

func TestEmptyFieldIsNoop(t *testing.T) {
	f := newTestField(0)
	f.InstanceMatrices(nil)
	f.Advance(3)
	assert.False(t, f.Dirty())
	assert.Zero(t, f.Version())
}

func TestMatrixPlacesInstance(t *testing.T) {
	f := newTestField(4)
	f.Advance(2)
	for i, in := range f.Instances() {
		m := f.Matrix(i)
		origin := math32.Vector4FromVector3(math32.Vec3(0, 0, 0), 1).MulMatrix4(&m)
		assert.InDelta(t, in.Position.X, origin.X, tol)
		assert.InDelta(t, in.Position.Y, origin.Y, tol)
		assert.InDelta(t, in.Position.Z, origin.Z, tol)
	}
}

func TestSetWindStrength(t *testing.T) {
	f := newTestField(4)
	assert.InDelta(t, DefaultWindStrength, f.WindStrength(), tol)

	f.SetWindStrength(0.5)
	f.Advance(math32.Pi / 4)
	// sin(pi/2) * 0.5 for instance 0
	assert.InDelta(t, 0.05, f.Instances()[0].Position.Y, tol)
	assert.InDelta(t, 0.1, f.Instances()[0].RotationZ, tol)

	f.SetWindStrength(0)
	assert.Zero(t, f.WindStrength())
	f.Advance(1.3)
	for _, in := range f.Instances() {
		assert.Zero(t, in.Position.Y)
		assert.Zero(t, in.RotationZ)
	}

	f.SetWindStrength(-1)
	assert.Zero(t, f.WindStrength())
}

func TestNewWindStrength(t *testing.T) {
	rng := func() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

	f := New(Params{Count: 2, Side: 1}, rng())
	assert.InDelta(t, DefaultWindStrength, f.WindStrength(), tol, "unset uses the default")

	calm := float32(0)
	f = New(Params{Count: 2, Side: 1, WindStrength: &calm}, rng())
	assert.Zero(t, f.WindStrength())
	f.Advance(0.7)
	assert.Zero(t, f.Instances()[1].RotationZ)

	gusty := float32(0.8)
	f = New(Params{Count: 2, Side: 1, WindStrength: &gusty}, rng())
	assert.InDelta(t, 0.8, f.WindStrength(), tol)
}
