package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Regular, Bold, Title, Small} {
		assert.NotNil(t, name.Get(), name)
	}
}

func TestUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestBadFontData(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
}

func TestTitleIsTallerThanSmall(t *testing.T) {
	require.NoError(t, LoadDefaults())
	assert.Greater(t, Title.Get().Metrics().Height.Ceil(), Small.Get().Metrics().Height.Ceil())
}
