package stops

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/vecedit"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", RGB(1, 1, 1)},
		{"000", RGB(0, 0, 0)},
		{"#f008", Color{R: 1, A: 136.0 / 255}},
		{"#3366CC", RGB(0x33/255.0, 0x66/255.0, 0xcc/255.0)},
		{"ff000080", Color{R: 1, A: 128.0 / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("ParseHex mismatch (-want +got):\n%s", diff)
			}
		})
	}

	for _, bad := range []string{"", "#12", "#12345", "#gg0000", "#1234567890"} {
		if _, err := ParseHex(bad); !errors.Is(err, vecedit.ErrInvalidArgument) {
			t.Errorf("ParseHex(%q) err = %v, want ErrInvalidArgument", bad, err)
		}
	}
}

func TestColorHex(t *testing.T) {
	for _, s := range []string{"#3366cc", "#ff000080", "#000000"} {
		c, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", s, err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("Hex() = %q, want %q", got, s)
		}
	}
	if got := (Color{R: 2, G: -1, B: 0.5, A: 1}).Hex(); got != "#ff0080" {
		t.Errorf("out of range Hex() = %q, want #ff0080", got)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{R: 128, G: 0, B: 0, A: 128})
	want := Color{R: 1, A: 128.0 / 255}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("FromColor mismatch (-want +got):\n%s", diff)
	}
	if n := RGB(1, 0.5, 0).NRGBA(); n != (color.NRGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Errorf("NRGBA() = %v", n)
	}
}

func TestLerpColor(t *testing.T) {
	red := RGB(1, 0, 0)
	transparent := Color{}

	// Fading to transparent keeps the hue.
	if diff := cmp.Diff(Color{R: 1, A: 0.5}, LerpColor(red, transparent, 0.5), approx); diff != "" {
		t.Errorf("fade mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(RGB(0.5, 0, 0.5), LerpColor(red, RGB(0, 0, 1), 0.5), approx); diff != "" {
		t.Errorf("opaque mismatch (-want +got):\n%s", diff)
	}
	if got := LerpColor(transparent, transparent, 0.3); got != (Color{}) {
		t.Errorf("transparent lerp = %+v", got)
	}

	l, err := FromOffsets([]float64{0, 1}, []Color{red, RGB(0, 0, 1)})
	if err != nil {
		t.Fatalf("FromOffsets: %v", err)
	}
	got, err := l.Sample(0.25, ExtendPad, LerpColor)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if diff := cmp.Diff(RGB(0.75, 0, 0.25), got, approx); diff != "" {
		t.Errorf("Sample mismatch (-want +got):\n%s", diff)
	}
}
