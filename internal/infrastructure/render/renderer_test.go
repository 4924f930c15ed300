package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesFixedSizePNG(t *testing.T) {
	r := NewCardRenderer()

	data, err := r.Render("What is the capital of France?")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 320, bounds.Dx())
	assert.Equal(t, 200, bounds.Dy())
}

func TestRenderEmptyText(t *testing.T) {
	r := NewCardRenderer()

	data, err := r.Render("")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
}

func TestRenderLongTextStaysInBounds(t *testing.T) {
	r := NewCardRenderer()

	long := "A very long answer that will certainly need to be wrapped onto several lines to stay inside the card image bounds without clipping"
	data, err := r.Render(long)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dy())
}
