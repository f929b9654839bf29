package grid

import (
	"errors"
	"testing"
)

func TestLevelForResolution(t *testing.T) {
	tests := []struct {
		resolution float64
		want       Level
		ok         bool
	}{
		{90, Level0, true},
		{10.0, Level0, true},
		{9.999, Level1, true},
		{1, Level1, true},
		{0.999, Level2, true},
		{1.0 / 6, Level2, true},
		{0.1, Level2, true},
		{0.05, Level3, true},
		{0.01, Level3, true},
		{0.005, Level4, true},
		{0.001, Level4, true},
		{0.0005, Level5, true},
		{0.0001, Level5, true},
		// Spacings of subdivided tiles land a few ulps below a band edge.
		{0.1 - 1e-15, Level2, true},
		{(50.0 - 40) / 10 / 10 / 10, Level3, true},
		{0.0001 * (1 - 1e-12), Level5, true},
		{0.00009, 0, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		got, ok := LevelForResolution(tt.resolution)
		if ok != tt.ok {
			t.Errorf("LevelForResolution(%v) ok = %v, want %v", tt.resolution, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("LevelForResolution(%v) = %v, want %v", tt.resolution, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	for l := Level0; l <= Level5; l++ {
		if got, want := l.String(), string(rune('0'+int(l))); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", int(l), got, want)
		}
		if !l.Valid() {
			t.Errorf("Level(%d).Valid() = false", int(l))
		}
	}
	if Level(6).Valid() || Level(-1).Valid() {
		t.Error("out of range levels reported valid")
	}
}

func TestElementTypeString(t *testing.T) {
	if got := LatitudeLabel.String(); got != "latitude-label" {
		t.Errorf("LatitudeLabel.String() = %q", got)
	}
	if got := ElementType(42).String(); got != "unknown" {
		t.Errorf("ElementType(42).String() = %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	for l := Level0; l <= Level5; l++ {
		got, err := ParseLevel(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v", l.String(), got, err)
		}
	}
	for _, s := range []string{"", "6", "-1", "one"} {
		if _, err := ParseLevel(s); !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("ParseLevel(%q) error = %v, want ErrUnknownLevel", s, err)
		}
	}
}
