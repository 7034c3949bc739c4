package latlon

import (
	"math"
	"testing"
)

func TestHaversineDistanceTo(t *testing.T) {
	p1 := LatLon{Lat: 0, Lon: 0}
	p2 := LatLon{Lat: 0, Lon: 1}
	d, err := Haversine{}.DistanceTo(p1, p2)
	if err != nil {
		t.Fatalf("DistanceTo returned %v", err)
	}
	want := r45 * π / 180
	if math.Abs(d-want) > 1e-6 {
		t.Errorf("{%f,%f}.DistanceTo({%f,%f}) = %f; want %f", p1.Lat, p1.Lon, p2.Lat, p2.Lon, d, want)
	}
	if math.Round(r45) != 6367453 {
		t.Errorf("r45 = %f; want 6367453", r45)
	}
}

func TestHaversineOutOfRange(t *testing.T) {
	_, err := Haversine{}.DistanceTo(LatLon{Lat: 91, Lon: 0}, LatLon{Lat: 0, Lon: 0})
	if err != ErrOutOfRange {
		t.Errorf("DistanceTo from lat 91 = %v; want ErrOutOfRange", err)
	}
}

func TestInitialBearing(t *testing.T) {
	tests := []struct {
		from, to LatLon
		want     float64
	}{
		{LatLon{Lat: 0, Lon: 0}, LatLon{Lat: 1, Lon: 0}, 0},
		{LatLon{Lat: 0, Lon: 0}, LatLon{Lat: 0, Lon: 1}, 90},
		{LatLon{Lat: 0, Lon: 0}, LatLon{Lat: -1, Lon: 0}, 180},
		{LatLon{Lat: 0, Lon: 0}, LatLon{Lat: 0, Lon: -1}, 270},
		{LatLon{Lat: 51.127, Lon: 1.338}, LatLon{Lat: 50.964, Lon: 1.853}, 116.5},
	}
	for _, tt := range tests {
		b, err := InitialBearing(tt.from, tt.to)
		if err != nil {
			t.Errorf("InitialBearing(%v, %v) returned %v", tt.from, tt.to, err)
			continue
		}
		if math.Round(b*10)/10 != tt.want {
			t.Errorf("InitialBearing(%v, %v) = %f; want %.1f", tt.from, tt.to, b, tt.want)
		}
	}
}

func TestInitialBearingNormalized(t *testing.T) {
	for lat := -80.0; lat <= 80; lat += 20 {
		for lon := -170.0; lon <= 170; lon += 17 {
			b, err := InitialBearing(LatLon{Lat: 10, Lon: 20}, LatLon{Lat: lat, Lon: lon})
			if err != nil {
				t.Fatalf("InitialBearing returned %v", err)
			}
			if b < 0 || b >= 360 {
				t.Errorf("InitialBearing to (%f,%f) = %f; want [0, 360)", lat, lon, b)
			}
		}
	}
}

func TestInitialBearingRadians(t *testing.T) {
	θ, err := InitialBearingRadians(LatLon{Lat: 0, Lon: 0}, LatLon{Lat: 0, Lon: -1})
	if err != nil {
		t.Fatalf("InitialBearingRadians returned %v", err)
	}
	if math.Abs(θ+π/2) > 1e-12 {
		t.Errorf("InitialBearingRadians west = %f; want -π/2", θ)
	}
	if _, err := InitialBearingRadians(LatLon{Lat: 0, Lon: 181}, LatLon{}); err != ErrOutOfRange {
		t.Errorf("InitialBearingRadians from lon 181 = %v; want ErrOutOfRange", err)
	}
}
