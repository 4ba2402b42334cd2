package rendering

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#ff0000", ColorRed},
		{"#000000", ColorBlack},
		{"#ffffff", ColorWhite},
		{"#80ff0000", Color(0x80FF0000)},
		{"  #d32f2f ", RGB(0xD3, 0x2F, 0x2F)},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.input)
		if err != nil {
			t.Errorf("ParseHex(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %08x, want %08x", tt.input, uint32(got), uint32(tt.want))
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, input := range []string{"", "#fff", "#gggggg", "red", "#12345"} {
		if _, err := ParseHex(input); err == nil {
			t.Errorf("ParseHex(%q) should fail", input)
		}
	}
}

func TestHexRGBRoundTrip(t *testing.T) {
	color := RGB(0xD3, 0x2F, 0x2F)
	hex := color.HexRGB()
	if hex != "#d32f2f" {
		t.Errorf("HexRGB() = %q, want #d32f2f", hex)
	}
	parsed, err := ParseHex(hex)
	if err != nil {
		t.Fatalf("ParseHex(%q) returned error: %v", hex, err)
	}
	if parsed != color {
		t.Errorf("round trip changed color: %08x != %08x", uint32(parsed), uint32(color))
	}
}

func TestWithAlpha(t *testing.T) {
	c := ColorRed.WithAlpha(0x80)
	if c != Color(0x80FF0000) {
		t.Errorf("WithAlpha = %08x", uint32(c))
	}
	if !floatEqual(c.Opacity(), 128.0/255.0) {
		t.Errorf("Opacity() = %g", c.Opacity())
	}
}
