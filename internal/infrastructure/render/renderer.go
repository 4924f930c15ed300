package render

import (
	"bytes"
	"fmt"

	appErrors "learnalert/internal/pkg/errors"

	"github.com/fogleman/gg"
)

// Card image dimensions match the notification attachment size the
// original card layout was designed around.
const (
	cardWidth  = 320
	cardHeight = 200
)

// CardRenderer rasterizes flashcard text into a fixed-size PNG suitable
// for attaching to a notification. It is stateless.
type CardRenderer struct{}

// NewCardRenderer creates a new CardRenderer.
func NewCardRenderer() *CardRenderer {
	return &CardRenderer{}
}

// Render draws text centered on a 320×200 dark background and returns the
// encoded PNG bytes. Long text is word-wrapped inside the card bounds.
func (r *CardRenderer) Render(text string) ([]byte, error) {
	dc := gg.NewContext(cardWidth, cardHeight)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	dc.SetRGB(1, 1, 1)
	dc.DrawStringWrapped(text, cardWidth/2, cardHeight/2, 0.5, 0.5, cardWidth-20, 1.5, gg.AlignCenter)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrRendering, err)
	}
	return buf.Bytes(), nil
}
