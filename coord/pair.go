package coord

import (
	"strings"

	"github.com/a-bouts/geo-calc/latlon"
)

const pairSeparators = ",\t"

func hasAxisLetter(s string, letters string) bool {
	return strings.ContainsAny(strings.ToUpper(s), letters)
}

// DetectPair looks for two coordinates separated by a comma or a tab and
// returns them in latitude, longitude order. The halves are swapped when the
// first one is marked E or W and the second one N or S.
func DetectPair(text string) (lat string, lon string, ok bool) {
	first := strings.IndexAny(text, pairSeparators)
	if first < 0 {
		return "", "", false
	}
	last := strings.LastIndexAny(text, pairSeparators)

	c1 := strings.TrimSpace(text[:first])
	c2 := strings.TrimSpace(text[last+1:])
	if !hasDigit(c1) || !hasDigit(c2) {
		return "", "", false
	}

	if hasAxisLetter(c1, "EW") && hasAxisLetter(c2, "NS") {
		return c2, c1, true
	}
	return c1, c2, true
}

// SeparatePair splits a pair typed into a single field. When one field holds
// both coordinates and the other holds no digit, the pair is spread over
// both; otherwise the fields are returned untouched.
func SeparatePair(latText, lonText string) (string, string) {
	if !hasDigit(lonText) {
		if lat, lon, ok := DetectPair(latText); ok {
			return lat, lon
		}
	}
	if !hasDigit(latText) {
		if lat, lon, ok := DetectPair(lonText); ok {
			return lat, lon
		}
	}
	return latText, lonText
}

// pairHalf is one side of a strict pair: an optional leading and trailing
// hemisphere letter around a body without letters.
type pairHalf struct {
	lead, trail byte
	body        string
}

func splitHalf(s string) (pairHalf, bool) {
	var h pairHalf
	s = strings.TrimSpace(strings.ToUpper(s))
	if s != "" && isDirection(rune(s[0])) {
		h.lead = s[0]
		s = strings.TrimSpace(s[1:])
	}
	if s != "" && isDirection(rune(s[len(s)-1])) {
		h.trail = s[len(s)-1]
		s = strings.TrimSpace(s[:len(s)-1])
	}
	if s == "" || !strings.ContainsAny(s[:1], "0123456789.-") || !hasDigit(s) {
		return h, false
	}
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return h, false
		}
	}
	h.body = s
	return h, true
}

func (h pairHalf) text() string {
	s := h.body
	if h.lead != 0 {
		s = string(h.lead) + s
	}
	if h.trail != 0 {
		s += string(h.trail)
	}
	return s
}

func (h pairHalf) marked(letters string) bool {
	return (h.lead != 0 && strings.IndexByte(letters, h.lead) >= 0) ||
		(h.trail != 0 && strings.IndexByte(letters, h.trail) >= 0)
}

// LocatePair recognizes text that is nothing but a comma separated pair of
// coordinates, such as a search box query, and parses it.
func LocatePair(text string) (latlon.LatLon, bool) {
	parts := strings.Split(text, ",")
	if len(parts) == 3 && strings.TrimSpace(parts[2]) == "" {
		parts = parts[:2]
	}
	if len(parts) != 2 {
		return latlon.LatLon{}, false
	}

	h1, ok1 := splitHalf(parts[0])
	h2, ok2 := splitHalf(parts[1])
	if !ok1 || !ok2 {
		return latlon.LatLon{}, false
	}
	if h1.marked("EW") || h2.marked("NS") {
		h1, h2 = h2, h1
	}

	lat, _, ok1 := ParseDegrees(h1.text())
	lon, _, ok2 := ParseDegrees(h2.text())
	if !ok1 || !ok2 {
		return latlon.LatLon{}, false
	}
	return latlon.LatLon{Lat: lat, Lon: lon}, true
}
