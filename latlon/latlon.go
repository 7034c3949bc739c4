package latlon

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const π = math.Pi

var (
	// ErrOutOfRange is returned when a latitude is outside [-90, 90] or a
	// longitude outside [-180, 180].
	ErrOutOfRange = errors.New("latlon: coordinate out of range")
	// ErrNoConvergence is returned when the Vincenty iteration exhausts its budget.
	ErrNoConvergence = errors.New("latlon: vincenty formula failed to converge")
)

type Distancer interface {
	DistanceTo(from, to LatLon) (float64, error)
}

type Destinator interface {
	Destination(from LatLon, bearing float64, distance float64) LatLon
}

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// InRange reports whether the point is a valid geographic position.
func (p LatLon) InRange() bool {
	return math.Abs(p.Lat) <= 90 && math.Abs(p.Lon) <= 180
}

func ToRadians(a float64) float64 {
	return a * π / 180.0
}

func ToDegrees(a float64) float64 {
	return a * 180.0 / π
}

// NormalizeNumber replaces comma decimal separators with points.
func NormalizeNumber(s string) string {
	return strings.Replace(s, ",", ".", -1)
}

// ParseDegrees reads a locale formatted number of degrees and returns radians.
func ParseDegrees(s string) (float64, error) {
	d, err := strconv.ParseFloat(strings.TrimSpace(NormalizeNumber(s)), 64)
	if err != nil {
		return math.NaN(), err
	}
	return ToRadians(d), nil
}

// Round rounds half away from zero at the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func Wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	if d >= 360.0 {
		d = 0
	}
	return d
}

func inRange(points ...LatLon) bool {
	for _, p := range points {
		if !p.InRange() {
			return false
		}
	}
	return true
}
