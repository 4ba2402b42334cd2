package dial

import (
	"strconv"

	"github.com/go-drift/clockface/pkg/rendering"
)

// PaintFace records the static face layer: background, tick marks and
// numerals. The result is retained between ticks and only rebuilt on
// relayout.
func PaintFace(face Face, theme Theme) *rendering.DisplayList {
	var rec rendering.PictureRecorder
	canvas := rec.BeginRecording(face.Size)

	canvas.Clear(theme.Background)
	canvas.Save()
	canvas.Translate(face.Center.X, face.Center.Y)

	for _, mark := range face.Ticks {
		color := theme.Tick
		if mark.Emphasis {
			color = theme.HourTick
		}
		canvas.DrawLine(mark.Outer, mark.Inner, rendering.Paint{
			Color:       color,
			Style:       rendering.PaintStyleStroke,
			StrokeWidth: mark.Width,
			StrokeCap:   rendering.CapRound,
		})
	}

	for _, numeral := range face.Numerals {
		layout := rendering.LayoutText(strconv.Itoa(numeral.Value), rendering.TextStyle{
			Color:    theme.Numeral,
			FontSize: numeral.FontSize,
		})
		// Position is the label center; DrawText anchors at top-left.
		canvas.DrawText(layout, rendering.Offset{
			X: numeral.Position.X - layout.Width/2,
			Y: numeral.Position.Y - layout.Height/2,
		})
	}

	canvas.Restore()
	return rec.EndRecording()
}

// PaintHands records the dynamic layer: the three hands and the center
// ornament, each rotated from the 12 o'clock position. The ornament
// rotates with the second hand.
func PaintHands(face Face, lengths HandLengths, angles HandAngles, theme Theme) *rendering.DisplayList {
	var rec rendering.PictureRecorder
	canvas := rec.BeginRecording(face.Size)

	paintHand(canvas, face.Center, angles.HourDeg, lengths.Hour, lengths.Tail, rendering.Paint{
		Color:       theme.HourHand,
		Style:       rendering.PaintStyleStroke,
		StrokeWidth: lengths.HourWidth,
		StrokeCap:   rendering.CapRound,
	})
	paintHand(canvas, face.Center, angles.MinuteDeg, lengths.Minute, lengths.Tail, rendering.Paint{
		Color:       theme.MinuteHand,
		Style:       rendering.PaintStyleStroke,
		StrokeWidth: lengths.MinuteWidth,
		StrokeCap:   rendering.CapRound,
	})
	paintHand(canvas, face.Center, angles.SecondDeg, lengths.Second, lengths.Tail, rendering.Paint{
		Color:       theme.SecondHand,
		Style:       rendering.PaintStyleStroke,
		StrokeWidth: lengths.SecondWidth,
		StrokeCap:   rendering.CapRound,
	})

	canvas.Save()
	canvas.Translate(face.Center.X, face.Center.Y)
	canvas.Rotate(rendering.Radians(angles.SecondDeg))
	canvas.DrawCircle(rendering.Offset{}, face.OrnamentRadius, rendering.Paint{
		Color: theme.Ornament,
		Style: rendering.PaintStyleFill,
	})
	canvas.Restore()

	return rec.EndRecording()
}

// paintHand draws one hand in a rotated frame. At 0 degrees the hand
// points straight up; the tail extends past the pivot on the opposite
// side.
func paintHand(canvas rendering.Canvas, center rendering.Offset, angleDeg, length, tail float64, paint rendering.Paint) {
	canvas.Save()
	canvas.Translate(center.X, center.Y)
	canvas.Rotate(rendering.Radians(angleDeg))
	canvas.DrawLine(
		rendering.Offset{X: 0, Y: tail},
		rendering.Offset{X: 0, Y: -length},
		paint,
	)
	canvas.Restore()
}
