package coord

import (
	"math"
	"testing"
)

func TestFormatDMS(t *testing.T) {
	got := FormatDMS(40.446111, Latitude, "")
	if got != `N40°26'46"` {
		t.Errorf("FormatDMS(40.446111, Latitude) = %q; want %q", got, `N40°26'46"`)
	}
	got = FormatDMS(-7.5, Longitude, " ")
	if got != `W007° 30' 0"` {
		t.Errorf("FormatDMS(-7.5, Longitude) = %q; want %q", got, `W007° 30' 0"`)
	}
}

func TestFormatDMM(t *testing.T) {
	tests := []struct {
		deg        float64
		axis       Axis
		spacer     string
		minuteMark string
		want       string
	}{
		{45.5, Latitude, "", "", "N45°30.0"},
		{-7.25, Longitude, " ", "'", "W007° 15.0'"},
		{0, Latitude, "", "", "N00°0.0"},
		{-33.865, Latitude, "", "", "S33°51.9"},
		{12.345678, Longitude, "", "", "E012°20.74068"},
	}
	for _, tt := range tests {
		if got := FormatDMM(tt.deg, tt.axis, tt.spacer, tt.minuteMark); got != tt.want {
			t.Errorf("FormatDMM(%v, %v) = %q; want %q", tt.deg, tt.axis, got, tt.want)
		}
	}
}

func TestFormatNoDigits(t *testing.T) {
	if got := FormatDMM(math.NaN(), Latitude, "", ""); got != "" {
		t.Errorf("FormatDMM(NaN) = %q; want \"\"", got)
	}
	if got := FormatDMS(math.Inf(1), Longitude, ""); got != "" {
		t.Errorf("FormatDMS(+Inf) = %q; want \"\"", got)
	}
	if got := FormatDDD(math.NaN()); got != "" {
		t.Errorf("FormatDDD(NaN) = %q; want \"\"", got)
	}
}

func TestFormatDDD(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{45, "45.0"},
		{-0.0, "0.0"},
		{12.123456789012, "12.12345678901"},
		{-180, "-180.0"},
	}
	for _, tt := range tests {
		if got := FormatDDD(tt.deg); got != tt.want {
			t.Errorf("FormatDDD(%v) = %q; want %q", tt.deg, got, tt.want)
		}
	}
}

func TestDMMRoundTrip(t *testing.T) {
	for _, deg := range []float64{45.5, -45.5, 12.3456, -0.75, 89.999} {
		for _, axis := range []Axis{Latitude, Longitude} {
			s := FormatDMM(deg, axis, "", "")
			back, _, ok := ParseDegrees(s)
			if !ok {
				t.Errorf("ParseDegrees(%q) failed", s)
				continue
			}
			if math.Abs(back-deg) > 1e-6/60 {
				t.Errorf("FormatDMM(%v, %v) = %q reads back as %v", deg, axis, s, back)
			}
			if again := FormatDMM(back, axis, "", ""); again != s {
				t.Errorf("FormatDMM(ParseDegrees(%q)) = %q", s, again)
			}
		}
	}
}
