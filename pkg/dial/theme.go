package dial

import "github.com/go-drift/clockface/pkg/rendering"

// Theme holds the colors handed to the rendering surface. Styling is a
// collaborator concern; the geometry core only carries the values through.
type Theme struct {
	Background rendering.Color
	Tick       rendering.Color
	HourTick   rendering.Color
	Numeral    rendering.Color
	HourHand   rendering.Color
	MinuteHand rendering.Color
	SecondHand rendering.Color
	Ornament   rendering.Color
}

// DefaultLightTheme returns the light color scheme.
func DefaultLightTheme() Theme {
	return Theme{
		Background: rendering.RGB(0xFA, 0xFA, 0xFA),
		Tick:       rendering.RGB(0x9E, 0x9E, 0x9E),
		HourTick:   rendering.RGB(0x42, 0x42, 0x42),
		Numeral:    rendering.RGB(0x21, 0x21, 0x21),
		HourHand:   rendering.RGB(0x21, 0x21, 0x21),
		MinuteHand: rendering.RGB(0x42, 0x42, 0x42),
		SecondHand: rendering.RGB(0xD3, 0x2F, 0x2F),
		Ornament:   rendering.RGB(0xD3, 0x2F, 0x2F),
	}
}

// DefaultDarkTheme returns the dark color scheme.
func DefaultDarkTheme() Theme {
	return Theme{
		Background: rendering.RGB(0x12, 0x12, 0x12),
		Tick:       rendering.RGB(0x61, 0x61, 0x61),
		HourTick:   rendering.RGB(0xBD, 0xBD, 0xBD),
		Numeral:    rendering.RGB(0xE0, 0xE0, 0xE0),
		HourHand:   rendering.RGB(0xE0, 0xE0, 0xE0),
		MinuteHand: rendering.RGB(0xBD, 0xBD, 0xBD),
		SecondHand: rendering.RGB(0xEF, 0x53, 0x50),
		Ornament:   rendering.RGB(0xEF, 0x53, 0x50),
	}
}
