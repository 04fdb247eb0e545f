package pulse

import (
	"math"
	"testing"

	"github.com/oliverbestmann/ignite/glm"
)

func TestColorDefaultIsWhite(t *testing.T) {
	var c Color

	if c.ToVec() != (glm.Vec4f{1, 1, 1, 1}) {
		t.Errorf("zero color should be opaque white, got %v", c.ToVec())
	}

	if c != ColorWhite {
		t.Error("zero color differs from ColorWhite")
	}
}

func TestColorSRGBA(t *testing.T) {
	v := ColorSRGBA(0.5, 0, 1, 0.5).ToVec()

	if math.Abs(float64(v[0])-0.2140) > 1e-3 {
		t.Errorf("unexpected linear red %v", v[0])
	}

	if v[1] != 0 || v[2] != 1 {
		t.Errorf("unexpected green/blue %v %v", v[1], v[2])
	}

	if v[3] != 0.5 {
		t.Errorf("alpha must not be converted, got %v", v[3])
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		value string
		want  glm.Vec4f
	}{
		{"#ffffff", glm.Vec4f{1, 1, 1, 1}},
		{"#000000", glm.Vec4f{0, 0, 0, 1}},
		{"#ff000000", glm.Vec4f{1, 0, 0, 0}},
		{" #00FF00 ", glm.Vec4f{0, 1, 0, 1}},
	}

	for _, tt := range tests {
		c, err := ParseColor(tt.value)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", tt.value, err)
			continue
		}

		if got := c.ToVec(); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}

	c, err := ParseColor("#808080")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}

	// srgb mid gray is about 0.216 in linear space
	if r := c.ToVec()[0]; math.Abs(float64(r)-0.2158) > 1e-3 {
		t.Errorf("gray not converted to linear rgb, got %v", r)
	}

	for _, invalid := range []string{"", "ffffff", "#fff", "#gggggg", "#ff00ff0"} {
		if _, err := ParseColor(invalid); err == nil {
			t.Errorf("ParseColor(%q) should fail", invalid)
		}
	}
}
