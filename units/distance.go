package units

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-bouts/geo-calc/latlon"
)

// Family is the unit family a distance text was written in.
type Family int

const (
	Unmarked Family = iota
	US
	Sea
)

// System returns the unit system to render results in for this family, or
// fallback when the text gave no hint.
func (f Family) System(fallback System) System {
	switch f {
	case US:
		return USCustomary
	case Sea:
		return Nautical
	}
	return fallback
}

func (f Family) String() string {
	switch f {
	case US:
		return "us"
	case Sea:
		return "nautical"
	}
	return ""
}

type Distance struct {
	Meters float64
	Units  Family
}

var numberRx = regexp.MustCompile(`[0-9]+\.?[0-9]*|\.[0-9]+`)

// Checked in order, first match wins.
var unitRxs = []struct {
	rx     *regexp.Regexp
	meters float64
	family Family
}{
	{regexp.MustCompile(`(?i)mi`), MetersPerMile, US},
	{regexp.MustCompile(`(?i)(\b|\d)(m\b|meter|metre)`), 1, Unmarked},
	{regexp.MustCompile(`(?i)(\b|\d)(naut|n\.?m|kn)`), MetersPerNauticalMile, Sea},
	{regexp.MustCompile(`(?i)((\b|\d)fe*t|')`), MetersPerFoot, US},
	{regexp.MustCompile(`(?i)(\b|\d)(yd|yard)`), MetersPerYard, US},
}

// ParseDistance reads a distance such as "12.5 mi", "300m", "4 NM" or "20'".
// A number without unit is in kilometers. Meters is NaN when the text holds
// no number.
func ParseDistance(text string) Distance {
	text = latlon.NormalizeNumber(text)

	n := numberRx.FindString(text)
	if n == "" {
		return Distance{Meters: math.NaN()}
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(n, "."), 64)
	if err != nil {
		return Distance{Meters: math.NaN()}
	}

	for _, u := range unitRxs {
		if u.rx.MatchString(text) {
			return Distance{Meters: v * u.meters, Units: u.family}
		}
	}
	return Distance{Meters: v * 1000}
}
