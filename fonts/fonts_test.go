package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{Regular, Bold, Title, Small, Mono} {
		assert.NotNil(t, name.Get(), name)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
}

func TestGetUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
