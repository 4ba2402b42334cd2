// Package dial computes analog clock face geometry: tick marks, numerals,
// hand lengths and hand angles. Everything here is a pure function of the
// viewport size or the current time; painting the results is handled by
// the painters in this package, and presenting them is the surface's job.
package dial

import (
	"math"
	"time"

	"github.com/go-drift/clockface/pkg/rendering"
)

const (
	// TickCount is the number of tick marks around the face.
	TickCount = 60
	// NumeralCount is the number of hour numerals.
	NumeralCount = 12

	// Hand lengths as fractions of the face radius.
	HourHandRatio   = 0.45
	MinuteHandRatio = 0.66
	SecondHandRatio = 0.82
)

// Proportional sizing factors with legibility floors. All radial sizes
// scale with the face radius so relayout is idempotent for a viewport.
const (
	tickDistanceRatio = 0.95

	minorTickLengthRatio = 0.05
	minorTickLengthMin   = 4.0
	minorTickWidthRatio  = 0.01
	minorTickWidthMin    = 1.0

	hourTickLengthRatio = 0.09
	hourTickLengthMin   = 7.0
	hourTickWidthRatio  = 0.02
	hourTickWidthMin    = 2.0

	numeralDistanceRatio = 0.78
	numeralSizeRatio     = 0.14
	numeralSizeMin       = 10.0

	ornamentRadiusRatio = 0.04
	ornamentRadiusMin   = 3.0

	hourHandWidthRatio   = 0.03
	hourHandWidthMin     = 3.0
	minuteHandWidthRatio = 0.02
	minuteHandWidthMin   = 2.0
	secondHandWidthRatio = 0.01
	secondHandWidthMin   = 1.0

	// Hands extend slightly past the pivot, opposite the pointing end.
	handTailRatio = 0.08
)

// TickMark is one of the 60 marks around the face. Angle 0 degrees in the
// polar convention points at 3 o'clock; the -90 offset in each mark's
// angle puts mark 0 at the 12 o'clock position.
type TickMark struct {
	Index    int
	AngleDeg float64
	Length   float64
	Width    float64
	Distance float64 // outer edge distance from center
	Emphasis bool    // true on every 5th mark (hour marks)

	// Precomputed endpoints relative to the face center.
	Outer rendering.Offset
	Inner rendering.Offset
}

// Numeral is one of the 12 hour labels, placed at a radius inside the
// tick ring.
type Numeral struct {
	Value    int
	AngleDeg float64
	Distance float64
	FontSize float64

	// Position is the label center relative to the face center.
	Position rendering.Offset
}

// Face is the ephemeral layout of the clock face for one viewport size.
// It is fully regenerated by BuildFace whenever the viewport changes.
type Face struct {
	Size           rendering.Size
	Center         rendering.Offset
	Radius         float64
	Ticks          []TickMark
	Numerals       []Numeral
	OrnamentRadius float64
}

// BuildFace lays out the static face geometry for a viewport. The radius
// is half the smaller viewport dimension; all marks and numerals are
// placed by polar-to-Cartesian conversion relative to the center. Calling
// it again with the same size yields an identical layout.
func BuildFace(size rendering.Size) Face {
	center := size.Center()
	radius := math.Min(center.X, center.Y)

	face := Face{
		Size:           size,
		Center:         center,
		Radius:         radius,
		Ticks:          make([]TickMark, 0, TickCount),
		Numerals:       make([]Numeral, 0, NumeralCount),
		OrnamentRadius: scaled(radius, ornamentRadiusRatio, ornamentRadiusMin),
	}

	tickDistance := radius * tickDistanceRatio
	for i := 0; i < TickCount; i++ {
		mark := TickMark{
			Index:    i,
			AngleDeg: float64(i)*6 - 90,
			Distance: tickDistance,
			Emphasis: i%5 == 0,
		}
		if mark.Emphasis {
			mark.Length = scaled(radius, hourTickLengthRatio, hourTickLengthMin)
			mark.Width = scaled(radius, hourTickWidthRatio, hourTickWidthMin)
		} else {
			mark.Length = scaled(radius, minorTickLengthRatio, minorTickLengthMin)
			mark.Width = scaled(radius, minorTickWidthRatio, minorTickWidthMin)
		}
		mark.Outer = rendering.PolarOffset(mark.AngleDeg, mark.Distance)
		mark.Inner = rendering.PolarOffset(mark.AngleDeg, mark.Distance-mark.Length)
		face.Ticks = append(face.Ticks, mark)
	}

	numeralDistance := radius * numeralDistanceRatio
	fontSize := scaled(radius, numeralSizeRatio, numeralSizeMin)
	for n := 1; n <= NumeralCount; n++ {
		numeral := Numeral{
			Value:    n,
			AngleDeg: float64(n)*30 - 90,
			Distance: numeralDistance,
			FontSize: fontSize,
		}
		numeral.Position = rendering.PolarOffset(numeral.AngleDeg, numeral.Distance)
		face.Numerals = append(face.Numerals, numeral)
	}

	return face
}

// HandLengths holds the three hand lengths in pixels, plus the stroke
// widths and tail extents used when painting.
type HandLengths struct {
	Hour   float64
	Minute float64
	Second float64

	HourWidth   float64
	MinuteWidth float64
	SecondWidth float64

	Tail float64
}

// ScaleHands derives hand lengths from the face radius as fixed
// fractions: hour 0.45r, minute 0.66r, second 0.82r. Pure function of
// the radius; rotation is not set here.
func ScaleHands(radius float64) HandLengths {
	return HandLengths{
		Hour:        radius * HourHandRatio,
		Minute:      radius * MinuteHandRatio,
		Second:      radius * SecondHandRatio,
		HourWidth:   scaled(radius, hourHandWidthRatio, hourHandWidthMin),
		MinuteWidth: scaled(radius, minuteHandWidthRatio, minuteHandWidthMin),
		SecondWidth: scaled(radius, secondHandWidthRatio, secondHandWidthMin),
		Tail:        radius * handTailRatio,
	}
}

// HandAngles holds the rotation of each hand in degrees, where 0 degrees
// is the 12 o'clock position and angles increase clockwise.
type HandAngles struct {
	HourDeg   float64
	MinuteDeg float64
	SecondDeg float64
}

// AnglesAt derives hand rotations from a wall-clock time. The hour and
// minute hands sweep fractionally with their subordinate units; the
// second hand moves in whole-second steps.
func AnglesAt(t time.Time) HandAngles {
	hours := float64(t.Hour() % 12)
	minutes := float64(t.Minute())
	seconds := float64(t.Second())

	return HandAngles{
		HourDeg:   hours*30 + minutes/60*30 + seconds/3600*30,
		MinuteDeg: minutes*6 + seconds/60*6,
		SecondDeg: seconds * 6,
	}
}

func scaled(radius, ratio, floor float64) float64 {
	return math.Max(radius*ratio, floor)
}
