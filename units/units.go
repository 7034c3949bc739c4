package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/a-bouts/geo-calc/latlon"
)

const (
	MetersPerMile         = 1609.344
	MetersPerNauticalMile = 1852.0
	MetersPerFoot         = 0.3048
	MetersPerYard         = 0.9144
	FeetPerMeter          = 3.28084
	FeetPerMile           = 5280.0
)

type System int

const (
	Metric System = iota
	USCustomary
	Nautical
)

func (s System) String() string {
	switch s {
	case USCustomary:
		return "us"
	case Nautical:
		return "nautical"
	}
	return "metric"
}

// ParseSystem maps "metric", "us" and "nautical" (and a few aliases) to a System.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "metric", "si", "km":
		return Metric, nil
	case "us", "imperial", "mi":
		return USCustomary, nil
	case "nautical", "nm":
		return Nautical, nil
	}
	return Metric, fmt.Errorf("unknown unit system '%s'", s)
}

// unit converts meters into a displayed unit.
type unit struct {
	symbol   string
	perMeter float64
}

var (
	meter        = unit{"m", 1}
	kilometer    = unit{"km", 1 / 1000.0}
	foot         = unit{"ft", FeetPerMeter}
	mile         = unit{"mi", 1 / MetersPerMile}
	nauticalMile = unit{"NM", 1 / MetersPerNauticalMile}
)

func (s System) units() (small, large unit) {
	switch s {
	case USCustomary:
		return foot, mile
	case Nautical:
		return foot, nauticalMile
	}
	return meter, kilometer
}

func render(v float64, places int, u unit) string {
	v = latlon.Round(v, places)
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + u.symbol
}

// Format renders an accurate distance: below 1000 of the small unit the
// value is given in meters or feet with one decimal, above it in kilometers,
// miles or nautical miles with three decimals.
func Format(meters float64, s System) string {
	if math.IsNaN(meters) {
		return "n/a"
	}
	small, large := s.units()
	if v := meters * small.perMeter; v < 1000 {
		return render(v, 1, small)
	}
	return render(meters*large.perMeter, 3, large)
}

// FormatApprox renders an approximate distance: whole meters or feet below
// one kilometer, mile or nautical mile, two decimals above.
func FormatApprox(meters float64, s System) string {
	if math.IsNaN(meters) {
		return "n/a"
	}
	small, large := s.units()
	if v := meters * large.perMeter; v >= 1 {
		return render(v, 2, large)
	}
	if s == Metric {
		return render(meters, 0, small)
	}
	return render(meters/MetersPerMile*FeetPerMile, 0, small)
}

// Measurement is a distance in meters together with the system it is shown in.
type Measurement struct {
	Meters float64
	System System
}

func (m Measurement) String() string {
	return Format(m.Meters, m.System)
}
