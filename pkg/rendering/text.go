package rendering

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/clockface/pkg/errors"
)

// defaultFontSize is used when no font size is specified.
const defaultFontSize = 16

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color    Color
	FontSize float64
}

// TextLayout contains measured text metrics and a resolved font face.
type TextLayout struct {
	Text   string
	Style  TextStyle
	Width  float64
	Height float64
	Ascent float64

	face font.Face
}

var (
	fontOnce   sync.Once
	fontSource *opentype.Font
	fontErr    error

	faceMu    sync.Mutex
	faceCache = make(map[int]font.Face)
)

// resolveFace returns a cached face for the given size, rounded to whole
// pixels. Faces are never evicted; the clock uses a handful of sizes.
func resolveFace(size float64) font.Face {
	if size <= 0 {
		size = defaultFontSize
	}
	key := int(size + 0.5)
	if key < 1 {
		key = 1
	}

	faceMu.Lock()
	defer faceMu.Unlock()
	if face, ok := faceCache[key]; ok {
		return face
	}

	fontOnce.Do(func() {
		fontSource, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		errors.Report(&errors.Error{
			Op:   "rendering.resolveFace",
			Kind: errors.KindRender,
			Err:  fontErr,
		})
		return nil
	}

	face, err := opentype.NewFace(fontSource, &opentype.FaceOptions{
		Size:    float64(key),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		errors.Report(&errors.Error{
			Op:   "rendering.resolveFace",
			Kind: errors.KindRender,
			Err:  err,
		})
		return nil
	}
	faceCache[key] = face
	return face
}

// LayoutText measures a single line of text with the given style.
func LayoutText(text string, style TextStyle) *TextLayout {
	layout := &TextLayout{Text: text, Style: style}
	face := resolveFace(style.FontSize)
	if face == nil {
		return layout
	}
	layout.face = face
	metrics := face.Metrics()
	layout.Ascent = fixedToFloat(metrics.Ascent)
	layout.Height = fixedToFloat(metrics.Ascent + metrics.Descent)
	layout.Width = fixedToFloat(font.MeasureString(face, text))
	return layout
}

// Face returns the resolved font face, or nil if font loading failed.
func (l *TextLayout) Face() font.Face {
	return l.face
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
