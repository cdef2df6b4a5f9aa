package tunables

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
field:
  count: 1200
  windStrength: 0.5
camera:
  sensitivity: 0.004
  minPitchDeg: -60
avatar:
  moveSpeed: 7.5
`)
	o, err := Parse(data)
	require.NoError(t, err)

	require.NotNil(t, o.Field.Count)
	assert.Equal(t, 1200, *o.Field.Count)
	assert.Equal(t, float32(0.5), *o.Field.WindStrength)
	assert.Nil(t, o.Field.Side)
	assert.Equal(t, float32(0.004), *o.Camera.Sensitivity)
	assert.Equal(t, float32(-60), *o.Camera.MinPitchDeg)
	assert.Equal(t, float32(7.5), *o.Avatar.MoveSpeed)
	assert.Nil(t, o.Avatar.Gravity)
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"negative_count", "field:\n  count: -1\n"},
		{"zero_side", "field:\n  side: 0\n"},
		{"negative_wind", "field:\n  windStrength: -0.1\n"},
		{"inverted_pitch", "camera:\n  minPitchDeg: 10\n  maxPitchDeg: -10\n"},
		{"malformed", "field: [\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.data))
			assert.Error(t, err)
		})
	}
}

func TestParseAcceptsCalmWind(t *testing.T) {
	o, err := Parse([]byte("field:\n  windStrength: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, o.Field.WindStrength)
	assert.Zero(t, *o.Field.WindStrength)
}

func TestLoadMissingFile(t *testing.T) {
	o, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
	assert.Nil(t, o)
}

func TestSet(t *testing.T) {
	v := float32(1)
	Set(&v, nil)
	assert.Equal(t, float32(1), v)

	n := float32(3)
	Set(&v, &n)
	assert.Equal(t, float32(3), v)
}

func TestWatcherSeesWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("field: {}\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("field:\n  count: 10\n"), 0o644))

	assert.Eventually(t, w.Poll, 2*time.Second, 20*time.Millisecond)
}
