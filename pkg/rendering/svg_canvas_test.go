package rendering

import (
	"strings"
	"testing"
)

func TestSVGCanvasDocumentShape(t *testing.T) {
	canvas := NewSVGCanvas(Size{Width: 200, Height: 100})
	canvas.Clear(ColorWhite)
	canvas.DrawLine(Offset{X: 10, Y: 10}, Offset{X: 50, Y: 10}, Paint{
		Color:       ColorBlack,
		Style:       PaintStyleStroke,
		StrokeWidth: 2,
		StrokeCap:   CapRound,
	})
	canvas.DrawCircle(Offset{X: 100, Y: 50}, 8, Paint{Color: ColorRed, Style: PaintStyleFill})

	doc := canvas.Finish()

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100"`,
		`<rect width="100%" height="100%" fill="#ffffff"/>`,
		`<line x1="10" y1="10" x2="50" y2="10" stroke="#000000" stroke-width="2" stroke-linecap="round"/>`,
		`<circle cx="100" cy="50" r="8" fill="#ff0000"/>`,
		`</svg>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestSVGCanvasBakesTransforms(t *testing.T) {
	canvas := NewSVGCanvas(Size{Width: 100, Height: 100})
	canvas.Save()
	canvas.Translate(50, 50)
	canvas.Rotate(Radians(90))
	// A line pointing up in the rotated frame lands pointing right.
	canvas.DrawLine(Offset{}, Offset{Y: -40}, Paint{Color: ColorBlack, Style: PaintStyleStroke, StrokeWidth: 1})
	canvas.Restore()
	canvas.DrawCircle(Offset{X: 10, Y: 10}, 3, Paint{Color: ColorBlack})

	doc := canvas.Finish()

	if !strings.Contains(doc, `<line x1="50" y1="50" x2="90" y2="50"`) {
		t.Errorf("rotated line not baked into coordinates:\n%s", doc)
	}
	// The restore puts the circle back in the untransformed frame.
	if !strings.Contains(doc, `<circle cx="10" cy="10"`) {
		t.Errorf("restore did not reset the transform:\n%s", doc)
	}
}

func TestSVGCanvasStrokedCircle(t *testing.T) {
	canvas := NewSVGCanvas(Size{Width: 100, Height: 100})
	canvas.DrawCircle(Offset{X: 50, Y: 50}, 20, Paint{
		Color:       ColorBlack,
		Style:       PaintStyleStroke,
		StrokeWidth: 3,
	})

	doc := canvas.Finish()
	if !strings.Contains(doc, `fill="none" stroke="#000000" stroke-width="3"`) {
		t.Errorf("stroked circle not emitted as outline:\n%s", doc)
	}
}

func TestSVGCanvasTextEscaping(t *testing.T) {
	canvas := NewSVGCanvas(Size{Width: 100, Height: 100})
	layout := LayoutText("<3 & more", TextStyle{Color: ColorBlack, FontSize: 12})
	canvas.DrawText(layout, Offset{X: 10, Y: 10})

	doc := canvas.Finish()
	if !strings.Contains(doc, "&lt;3 &amp; more") {
		t.Errorf("text not escaped:\n%s", doc)
	}
	if !strings.Contains(doc, `font-size="12"`) {
		t.Errorf("font size missing:\n%s", doc)
	}
}

func TestSVGCanvasOpacity(t *testing.T) {
	canvas := NewSVGCanvas(Size{Width: 100, Height: 100})
	canvas.DrawCircle(Offset{X: 50, Y: 50}, 10, Paint{Color: ColorBlack.WithAlpha(128)})

	doc := canvas.Finish()
	if !strings.Contains(doc, `fill-opacity="0.5"`) {
		t.Errorf("alpha not emitted as opacity:\n%s", doc)
	}
}
