package rendering

import (
	"bytes"
	"image/png"
	"testing"
)

func pixelSet(c *RasterCanvas, x, y int) bool {
	return c.Image().RGBAAt(x, y).A > 0
}

func TestRasterCanvasClear(t *testing.T) {
	canvas := NewRasterCanvas(Size{Width: 10, Height: 10})
	canvas.Clear(ColorWhite)

	px := canvas.Image().RGBAAt(5, 5)
	if px.R != 255 || px.G != 255 || px.B != 255 || px.A != 255 {
		t.Errorf("center pixel after Clear(white) = %+v", px)
	}
}

func TestRasterCanvasFilledCircle(t *testing.T) {
	canvas := NewRasterCanvas(Size{Width: 40, Height: 40})
	canvas.Clear(ColorBlack)
	canvas.DrawCircle(Offset{X: 20, Y: 20}, 10, Paint{Color: ColorRed, Style: PaintStyleFill})

	center := canvas.Image().RGBAAt(20, 20)
	if center.R < 200 || center.G > 50 {
		t.Errorf("circle center should be red, got %+v", center)
	}
	corner := canvas.Image().RGBAAt(1, 1)
	if corner.R != 0 || corner.G != 0 || corner.B != 0 {
		t.Errorf("corner should stay black, got %+v", corner)
	}
}

func TestRasterCanvasStrokedCircleHasHole(t *testing.T) {
	canvas := NewRasterCanvas(Size{Width: 60, Height: 60})
	canvas.Clear(ColorBlack)
	canvas.DrawCircle(Offset{X: 30, Y: 30}, 20, Paint{
		Color:       ColorWhite,
		Style:       PaintStyleStroke,
		StrokeWidth: 2,
	})

	onRing := canvas.Image().RGBAAt(50, 30)
	if onRing.R < 200 {
		t.Errorf("ring pixel should be white, got %+v", onRing)
	}
	center := canvas.Image().RGBAAt(30, 30)
	if center.R != 0 {
		t.Errorf("ring interior should stay black, got %+v", center)
	}
}

func TestRasterCanvasLine(t *testing.T) {
	canvas := NewRasterCanvas(Size{Width: 40, Height: 40})
	canvas.Clear(ColorBlack)
	canvas.DrawLine(Offset{X: 5, Y: 20}, Offset{X: 35, Y: 20}, Paint{
		Color:       ColorWhite,
		Style:       PaintStyleStroke,
		StrokeWidth: 3,
	})

	mid := canvas.Image().RGBAAt(20, 20)
	if mid.R < 200 {
		t.Errorf("pixel on the line should be white, got %+v", mid)
	}
	above := canvas.Image().RGBAAt(20, 5)
	if above.R != 0 {
		t.Errorf("pixel off the line should stay black, got %+v", above)
	}
}

func TestRasterCanvasRotatedLine(t *testing.T) {
	canvas := NewRasterCanvas(Size{Width: 40, Height: 40})
	canvas.Clear(ColorBlack)

	// A line drawn pointing up in a frame rotated 90 degrees lands
	// pointing right from the pivot.
	canvas.Save()
	canvas.Translate(20, 20)
	canvas.Rotate(Radians(90))
	canvas.DrawLine(Offset{}, Offset{Y: -15}, Paint{
		Color:       ColorWhite,
		Style:       PaintStyleStroke,
		StrokeWidth: 3,
	})
	canvas.Restore()

	right := canvas.Image().RGBAAt(30, 20)
	if right.R < 200 {
		t.Errorf("rotated line should pass through (30,20), got %+v", right)
	}
	up := canvas.Image().RGBAAt(20, 8)
	if up.R != 0 {
		t.Errorf("nothing should be drawn above the pivot, got %+v", up)
	}
}

func TestRasterCanvasText(t *testing.T) {
	canvas := NewRasterCanvas(Size{Width: 60, Height: 30})
	layout := LayoutText("12", TextStyle{Color: ColorWhite, FontSize: 16})
	if layout.Width <= 0 || layout.Height <= 0 {
		t.Fatalf("layout not measured: %+v", layout)
	}
	canvas.DrawText(layout, Offset{X: 5, Y: 5})

	found := false
	for y := 0; y < 30 && !found; y++ {
		for x := 0; x < 60 && !found; x++ {
			if pixelSet(canvas, x, y) {
				found = true
			}
		}
	}
	if !found {
		t.Error("DrawText left no pixels behind")
	}
}

func TestLayoutTextWidthGrowsWithSize(t *testing.T) {
	small := LayoutText("12", TextStyle{Color: ColorWhite, FontSize: 10})
	large := LayoutText("12", TextStyle{Color: ColorWhite, FontSize: 30})
	if large.Width <= small.Width {
		t.Errorf("width should grow with font size: %g <= %g", large.Width, small.Width)
	}
	if large.Ascent <= small.Ascent {
		t.Errorf("ascent should grow with font size: %g <= %g", large.Ascent, small.Ascent)
	}
}

func TestRasterCanvasEncodePNG(t *testing.T) {
	canvas := NewRasterCanvas(Size{Width: 20, Height: 20})
	canvas.Clear(ColorWhite)

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 20 || bounds.Dy() != 20 {
		t.Errorf("decoded size = %v", bounds)
	}
}
