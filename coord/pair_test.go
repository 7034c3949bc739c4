package coord

import "testing"

func TestDetectPair(t *testing.T) {
	tests := []struct {
		in       string
		lat, lon string
		ok       bool
	}{
		{"40.5, -75.25", "40.5", "-75.25", true},
		{"40.5\t-75.25", "40.5", "-75.25", true},
		{"75 15 W, 40 30 N", "40 30 N", "75 15 W", true},
		{"N40 30, W75 15", "N40 30", "W75 15", true},
		{"40.5", "", "", false},
		{"Paris, France", "", "", false},
	}
	for _, tt := range tests {
		lat, lon, ok := DetectPair(tt.in)
		if ok != tt.ok || lat != tt.lat || lon != tt.lon {
			t.Errorf("DetectPair(%q) = %q, %q, %t; want %q, %q, %t", tt.in, lat, lon, ok, tt.lat, tt.lon, tt.ok)
		}
	}
}

func TestSeparatePair(t *testing.T) {
	lat, lon := SeparatePair("40.5, -75.25", "")
	if lat != "40.5" || lon != "-75.25" {
		t.Errorf("SeparatePair from latitude field = %q, %q", lat, lon)
	}
	lat, lon = SeparatePair(" ", "-75.25 W, 40.5 N")
	if lat != "40.5 N" || lon != "-75.25 W" {
		t.Errorf("SeparatePair from longitude field = %q, %q", lat, lon)
	}
	lat, lon = SeparatePair("40.5, 1", "-75")
	if lat != "40.5, 1" || lon != "-75" {
		t.Errorf("SeparatePair with both fields filled = %q, %q; want untouched", lat, lon)
	}
}

func TestLocatePair(t *testing.T) {
	tests := []struct {
		in       string
		lat, lon float64
		ok       bool
	}{
		{"40.5 N, 75.25 W", 40.5, -75.25, true},
		{"75.25W, 40.5N", 40.5, -75.25, true},
		{"  -33.865, 151.2094,", -33.865, 151.2094, true},
		{"N 40°30', W 75°15'", 40.5, -75.25, true},
		{"Paris, France", 0, 0, false},
		{"10 Downing St, London", 0, 0, false},
		{"1, 2, 3", 0, 0, false},
	}
	for _, tt := range tests {
		p, ok := LocatePair(tt.in)
		if ok != tt.ok || (ok && (p.Lat != tt.lat || p.Lon != tt.lon)) {
			t.Errorf("LocatePair(%q) = %v, %t; want {%f,%f}, %t", tt.in, p, ok, tt.lat, tt.lon, tt.ok)
		}
	}
}
