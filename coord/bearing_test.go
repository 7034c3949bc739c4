package coord

import (
	"math"
	"testing"
)

func TestParseBearing(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"N45°30'E", 45.5},
		{"n10w", 350},
		{"S10E", 170},
		{"S45W", 225},
		{"270", 270},
		{"135°30'", 135.5},
		{"90 E", 90},
		{"-45", -45},
	}
	for _, tt := range tests {
		if got := ParseBearing(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseBearing(%q) = %f; want %f", tt.in, got, tt.want)
		}
	}

	if got := ParseBearing("north"); !math.IsNaN(got) {
		t.Errorf("ParseBearing(\"north\") = %f; want NaN", got)
	}
}
