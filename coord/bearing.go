package coord

import (
	"math"
	"strings"
)

// ParseBearing reads an azimuth in degrees, either plain ("270", "135°30'")
// or in quadrant notation ("N45°30'E", "S10W"). NaN is returned when no
// number can be read.
func ParseBearing(text string) float64 {
	up := strings.ToUpper(text)

	i := strings.IndexAny(up, "NS")
	j := strings.LastIndexAny(up, "EW")
	if i >= 0 && j > i && hasDigit(up[i+1:j]) {
		v, _, ok := ParseDegrees(up[i+1 : j])
		if !ok {
			return math.NaN()
		}
		switch {
		case up[i] == 'N' && up[j] == 'E':
			return v
		case up[i] == 'N' && up[j] == 'W':
			return 360 - v
		case up[i] == 'S' && up[j] == 'E':
			return 180 - v
		default:
			return 180 + v
		}
	}

	v, _, ok := ParseDegrees(strings.Map(func(r rune) rune {
		if isDirection(r) {
			return ' '
		}
		return r
	}, text))
	if !ok {
		return math.NaN()
	}
	return v
}
