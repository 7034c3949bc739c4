package coord

import (
	"fmt"
	"math"
	"strconv"

	"github.com/a-bouts/geo-calc/latlon"
)

const degreeSign = "°"

func direction(deg float64, axis Axis) string {
	if axis == Latitude {
		if deg < 0 {
			return "S"
		}
		return "N"
	}
	if deg < 0 {
		return "W"
	}
	return "E"
}

func padDegrees(d float64, axis Axis) string {
	if axis == Longitude {
		return fmt.Sprintf("%03d", int(d))
	}
	return fmt.Sprintf("%02d", int(d))
}

func renderable(deg float64) bool {
	return !math.IsNaN(deg) && !math.IsInf(deg, 0)
}

// FormatDDD renders decimal degrees rounded to 11 places. Whole values keep a
// ".0" suffix.
func FormatDDD(deg float64) string {
	if !renderable(deg) {
		return ""
	}
	n := latlon.Round(deg, 11)
	s := formatNumber(n)
	if n == math.Floor(n) {
		s += ".0"
	}
	return s
}

// FormatDMM renders degrees and decimal minutes, e.g. "N45°30.5". Without an
// axis the value is rendered as decimal degrees.
func FormatDMM(deg float64, axis Axis, spacer string, minuteMark string) string {
	if !renderable(deg) {
		return ""
	}
	if axis == Unknown {
		return FormatDDD(deg)
	}

	a := math.Abs(deg)
	d := math.Floor(a)
	m := latlon.Round(60*(a-d), 6)

	minutes := formatNumber(m)
	if m == math.Floor(m) {
		minutes += ".0"
	}

	return direction(deg, axis) + padDegrees(d, axis) + degreeSign + spacer + minutes + minuteMark
}

// FormatDMS renders degrees, minutes and seconds, e.g. N40°26'46".
func FormatDMS(deg float64, axis Axis, spacer string) string {
	if !renderable(deg) {
		return ""
	}
	if axis == Unknown {
		return FormatDDD(deg)
	}

	a := math.Abs(deg)
	d := math.Floor(a)
	mm := latlon.Round(60*(a-d), 6)
	m := math.Floor(mm)
	s := latlon.Round(60*(mm-m), 3)

	return direction(deg, axis) + padDegrees(d, axis) + degreeSign + spacer +
		strconv.Itoa(int(m)) + "'" + spacer + formatNumber(s) + `"`
}
