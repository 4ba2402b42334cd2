package rendering

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// circleKappa is the cubic Bezier control-point factor for a quarter arc.
const circleKappa = 0.5522847498

// matrix is a 2D affine transform mapping (x, y) to
// (a*x + c*y + tx, b*x + d*y + ty).
type matrix struct {
	a, b, c, d, tx, ty float64
}

func identityMatrix() matrix {
	return matrix{a: 1, d: 1}
}

func (m matrix) apply(p Offset) Offset {
	return Offset{
		X: m.a*p.X + m.c*p.Y + m.tx,
		Y: m.b*p.X + m.d*p.Y + m.ty,
	}
}

// concat returns the transform that applies n first, then m.
func (m matrix) concat(n matrix) matrix {
	return matrix{
		a:  m.a*n.a + m.c*n.b,
		b:  m.b*n.a + m.d*n.b,
		c:  m.a*n.c + m.c*n.d,
		d:  m.b*n.c + m.d*n.d,
		tx: m.a*n.tx + m.c*n.ty + m.tx,
		ty: m.b*n.tx + m.d*n.ty + m.ty,
	}
}

// RasterCanvas implements Canvas by rasterizing into an RGBA image using
// the x/image vector rasterizer. Text is drawn via the font drawer; the
// current transform is applied to the text anchor only, so text should be
// drawn outside rotated frames.
type RasterCanvas struct {
	img   *image.RGBA
	size  Size
	rast  *vector.Rasterizer
	xform matrix
	stack []matrix
}

// NewRasterCanvas creates a raster canvas backed by a fresh RGBA image of
// the given size, rounded up to whole pixels.
func NewRasterCanvas(size Size) *RasterCanvas {
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &RasterCanvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		size:  size,
		rast:  vector.NewRasterizer(w, h),
		xform: identityMatrix(),
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the current image as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.xform)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.xform = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.xform = c.xform.concat(matrix{a: 1, d: 1, tx: dx, ty: dy})
}

func (c *RasterCanvas) Rotate(radians float64) {
	sin, cos := math.Sincos(radians)
	c.xform = c.xform.concat(matrix{a: cos, b: sin, c: -sin, d: cos})
}

func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(toNRGBA(col)), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawLine(start, end Offset, paint Paint) {
	width := paint.StrokeWidth
	if width <= 0 {
		width = 1
	}
	half := width / 2

	dx := end.X - start.X
	dy := end.Y - start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.fillCircle(start, half, paint.Color)
		return
	}
	// Unit normal to the segment.
	nx := -dy / length * half
	ny := dx / length * half

	quad := [4]Offset{
		{X: start.X + nx, Y: start.Y + ny},
		{X: end.X + nx, Y: end.Y + ny},
		{X: end.X - nx, Y: end.Y - ny},
		{X: start.X - nx, Y: start.Y - ny},
	}
	c.beginPath()
	c.moveTo(quad[0])
	for _, p := range quad[1:] {
		c.lineTo(p)
	}
	c.rast.ClosePath()
	c.fillPath(paint.Color)

	if paint.StrokeCap == CapRound {
		c.fillCircle(start, half, paint.Color)
		c.fillCircle(end, half, paint.Color)
	}
}

func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	switch paint.Style {
	case PaintStyleStroke:
		width := paint.StrokeWidth
		if width <= 0 {
			width = 1
		}
		outer := radius + width/2
		inner := radius - width/2
		if inner < 0 {
			inner = 0
		}
		c.beginPath()
		c.appendCirclePath(center, outer, false)
		c.appendCirclePath(center, inner, true)
		c.fillPath(paint.Color)
	default:
		c.fillCircle(center, radius, paint.Color)
	}
}

func (c *RasterCanvas) DrawText(layout *TextLayout, position Offset) {
	face := layout.Face()
	if face == nil || layout.Text == "" {
		return
	}
	anchor := c.xform.apply(position)
	drawer := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(toNRGBA(layout.Style.Color)),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(anchor.X),
			Y: floatToFixed(anchor.Y + layout.Ascent),
		},
	}
	drawer.DrawString(layout.Text)
}

func (c *RasterCanvas) Size() Size {
	return c.size
}

func (c *RasterCanvas) beginPath() {
	bounds := c.img.Bounds()
	c.rast.Reset(bounds.Dx(), bounds.Dy())
	c.rast.DrawOp = draw.Over
}

func (c *RasterCanvas) moveTo(p Offset) {
	d := c.xform.apply(p)
	c.rast.MoveTo(float32(d.X), float32(d.Y))
}

func (c *RasterCanvas) lineTo(p Offset) {
	d := c.xform.apply(p)
	c.rast.LineTo(float32(d.X), float32(d.Y))
}

func (c *RasterCanvas) cubeTo(p1, p2, p3 Offset) {
	d1 := c.xform.apply(p1)
	d2 := c.xform.apply(p2)
	d3 := c.xform.apply(p3)
	c.rast.CubeTo(
		float32(d1.X), float32(d1.Y),
		float32(d2.X), float32(d2.Y),
		float32(d3.X), float32(d3.Y),
	)
}

func (c *RasterCanvas) fillPath(col Color) {
	c.rast.Draw(c.img, c.img.Bounds(), image.NewUniform(toNRGBA(col)), image.Point{})
}

func (c *RasterCanvas) fillCircle(center Offset, radius float64, col Color) {
	if radius <= 0 {
		return
	}
	c.beginPath()
	c.appendCirclePath(center, radius, false)
	c.fillPath(col)
}

// appendCirclePath approximates a circle with four cubic Bezier arcs.
// Reversed winding subtracts the circle from the accumulated coverage,
// which is how stroked rings are cut out.
func (c *RasterCanvas) appendCirclePath(center Offset, radius float64, reversed bool) {
	if radius <= 0 {
		return
	}
	k := radius * circleKappa
	cx, cy := center.X, center.Y

	east := Offset{X: cx + radius, Y: cy}
	south := Offset{X: cx, Y: cy + radius}
	west := Offset{X: cx - radius, Y: cy}
	north := Offset{X: cx, Y: cy - radius}

	c.moveTo(east)
	if !reversed {
		c.cubeTo(Offset{X: cx + radius, Y: cy + k}, Offset{X: cx + k, Y: cy + radius}, south)
		c.cubeTo(Offset{X: cx - k, Y: cy + radius}, Offset{X: cx - radius, Y: cy + k}, west)
		c.cubeTo(Offset{X: cx - radius, Y: cy - k}, Offset{X: cx - k, Y: cy - radius}, north)
		c.cubeTo(Offset{X: cx + k, Y: cy - radius}, Offset{X: cx + radius, Y: cy - k}, east)
	} else {
		c.cubeTo(Offset{X: cx + radius, Y: cy - k}, Offset{X: cx + k, Y: cy - radius}, north)
		c.cubeTo(Offset{X: cx - k, Y: cy - radius}, Offset{X: cx - radius, Y: cy - k}, west)
		c.cubeTo(Offset{X: cx - radius, Y: cy + k}, Offset{X: cx - k, Y: cy + radius}, south)
		c.cubeTo(Offset{X: cx + k, Y: cy + radius}, Offset{X: cx + radius, Y: cy + k}, east)
	}
	c.rast.ClosePath()
}

func toNRGBA(c Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
