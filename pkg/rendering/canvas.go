// Package rendering provides the backend-independent drawing core for
// clock faces: geometry types, paints, the Canvas interface, and a
// recordable display list that can be replayed onto any backend.
//
// Two backends ship with the package: RasterCanvas renders into an
// in-memory RGBA image, and SVGCanvas emits an SVG document. Both
// implement [Canvas], so painters stay independent of the output target.
package rendering

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recent transform state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Rotate rotates the coordinate system by radians, clockwise in
	// screen coordinates.
	Rotate(radians float64)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawText draws a measured text layout with its top-left corner at
	// the given position.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
