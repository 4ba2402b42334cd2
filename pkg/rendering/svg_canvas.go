package rendering

import (
	"fmt"
	"math"
	"strings"
)

// SVGCanvas implements Canvas by emitting SVG elements immediately.
// Transforms are baked into emitted coordinates rather than expressed as
// SVG group transforms, so the output stays flat and diffable.
type SVGCanvas struct {
	body  strings.Builder
	size  Size
	clear Color
	hasBG bool
	xform matrix
	stack []matrix
}

// NewSVGCanvas creates an SVG canvas of the given size.
func NewSVGCanvas(size Size) *SVGCanvas {
	return &SVGCanvas{
		size:  size,
		xform: identityMatrix(),
	}
}

func (c *SVGCanvas) Save() {
	c.stack = append(c.stack, c.xform)
}

func (c *SVGCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.xform = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *SVGCanvas) Translate(dx, dy float64) {
	c.xform = c.xform.concat(matrix{a: 1, d: 1, tx: dx, ty: dy})
}

func (c *SVGCanvas) Rotate(radians float64) {
	sin, cos := math.Sincos(radians)
	c.xform = c.xform.concat(matrix{a: cos, b: sin, c: -sin, d: cos})
}

func (c *SVGCanvas) Clear(color Color) {
	c.clear = color
	c.hasBG = true
	c.body.Reset()
}

func (c *SVGCanvas) DrawLine(start, end Offset, paint Paint) {
	p1 := c.xform.apply(start)
	p2 := c.xform.apply(end)
	width := paint.StrokeWidth
	if width <= 0 {
		width = 1
	}
	fmt.Fprintf(&c.body,
		`  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="%s"%s/>`+"\n",
		svgNum(p1.X), svgNum(p1.Y), svgNum(p2.X), svgNum(p2.Y),
		paint.Color.HexRGB(), svgNum(width), paint.StrokeCap, svgOpacity("stroke-opacity", paint.Color))
}

func (c *SVGCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	p := c.xform.apply(center)
	if paint.Style == PaintStyleStroke {
		width := paint.StrokeWidth
		if width <= 0 {
			width = 1
		}
		fmt.Fprintf(&c.body,
			`  <circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
			svgNum(p.X), svgNum(p.Y), svgNum(radius),
			paint.Color.HexRGB(), svgNum(width), svgOpacity("stroke-opacity", paint.Color))
		return
	}
	fmt.Fprintf(&c.body,
		`  <circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`+"\n",
		svgNum(p.X), svgNum(p.Y), svgNum(radius),
		paint.Color.HexRGB(), svgOpacity("fill-opacity", paint.Color))
}

func (c *SVGCanvas) DrawText(layout *TextLayout, position Offset) {
	if layout.Text == "" {
		return
	}
	p := c.xform.apply(position)
	fmt.Fprintf(&c.body,
		`  <text x="%s" y="%s" font-family="Go, sans-serif" font-size="%s" fill="%s"%s>%s</text>`+"\n",
		svgNum(p.X), svgNum(p.Y+layout.Ascent), svgNum(layout.Style.FontSize),
		layout.Style.Color.HexRGB(), svgOpacity("fill-opacity", layout.Style.Color),
		escapeText(layout.Text))
}

func (c *SVGCanvas) Size() Size {
	return c.size
}

// Finish returns the complete SVG document.
func (c *SVGCanvas) Finish() string {
	var doc strings.Builder
	fmt.Fprintf(&doc,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		svgNum(c.size.Width), svgNum(c.size.Height), svgNum(c.size.Width), svgNum(c.size.Height))
	if c.hasBG {
		fmt.Fprintf(&doc, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", c.clear.HexRGB())
	}
	doc.WriteString(c.body.String())
	doc.WriteString("</svg>\n")
	return doc.String()
}

// svgNum formats a coordinate with enough precision for crisp output
// without trailing noise.
func svgNum(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

func svgOpacity(attr string, c Color) string {
	op := c.Opacity()
	if op >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, attr, svgNum(op))
}

func escapeText(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}
