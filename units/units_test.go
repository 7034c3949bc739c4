package units

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		meters float64
		system System
		want   string
	}{
		{1000, Metric, "1 km"},
		{999.9, Metric, "999.9 m"},
		{969954.1663137189, Metric, "969.954 km"},
		{969954.1663137189, USCustomary, "602.702 mi"},
		{969954.1663137189, Nautical, "523.733 NM"},
		{111.3195, USCustomary, "365.2 ft"},
		{111.3195, Nautical, "365.2 ft"},
		{0, Metric, "0 m"},
	}
	for _, tt := range tests {
		if got := Format(tt.meters, tt.system); got != tt.want {
			t.Errorf("Format(%v, %v) = %q; want %q", tt.meters, tt.system, got, tt.want)
		}
	}
	if got := Format(math.NaN(), Metric); got != "n/a" {
		t.Errorf("Format(NaN) = %q; want \"n/a\"", got)
	}
}

func TestFormatApprox(t *testing.T) {
	tests := []struct {
		meters float64
		system System
		want   string
	}{
		{111133.5, Metric, "111.13 km"},
		{555.4, Metric, "555 m"},
		{555.4, USCustomary, "1822 ft"},
		{1609.344, USCustomary, "1 mi"},
		{2000, Nautical, "1.08 NM"},
	}
	for _, tt := range tests {
		if got := FormatApprox(tt.meters, tt.system); got != tt.want {
			t.Errorf("FormatApprox(%v, %v) = %q; want %q", tt.meters, tt.system, got, tt.want)
		}
	}
}

func TestParseSystem(t *testing.T) {
	for in, want := range map[string]System{"metric": Metric, "US": USCustomary, " nautical ": Nautical, "": Metric} {
		got, err := ParseSystem(in)
		if err != nil || got != want {
			t.Errorf("ParseSystem(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseSystem("furlongs"); err == nil {
		t.Errorf("ParseSystem(\"furlongs\") want error")
	}
}

func TestMeasurementString(t *testing.T) {
	m := Measurement{Meters: 1500, System: Metric}
	if m.String() != "1.5 km" {
		t.Errorf("Measurement.String() = %q; want \"1.5 km\"", m.String())
	}
}
