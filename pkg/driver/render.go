package driver

import (
	"bytes"

	"github.com/go-drift/clockface/pkg/rendering"
)

// RenderSVG replays the frame's layers onto an SVG canvas and returns the
// document.
func (f Frame) RenderSVG() string {
	canvas := rendering.NewSVGCanvas(f.Size)
	f.replay(canvas)
	return canvas.Finish()
}

// RenderPNG replays the frame's layers onto a raster canvas and returns
// the encoded PNG bytes.
func (f Frame) RenderPNG() ([]byte, error) {
	canvas := rendering.NewRasterCanvas(f.Size)
	f.replay(canvas)
	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f Frame) replay(canvas rendering.Canvas) {
	if f.Face != nil {
		f.Face.Paint(canvas)
	}
	if f.Hands != nil {
		f.Hands.Paint(canvas)
	}
}
