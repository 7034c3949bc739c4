// Package coord reads and writes single coordinates written by humans:
// decimal degrees, degrees and decimal minutes or degrees, minutes and
// seconds, with an optional hemisphere letter or sign.
package coord

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

type Axis int

const (
	Unknown Axis = iota
	Latitude
	Longitude
)

func (a Axis) String() string {
	switch a {
	case Latitude:
		return "lat"
	case Longitude:
		return "lon"
	}
	return ""
}

type Format int

const (
	DDD Format = iota
	DMM
	DMS
)

// ParseFormat accepts "ddd", "dmm" and "dms". Anything else is DDD.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dmm":
		return DMM
	case "dms":
		return DMS
	}
	return DDD
}

// Token is the structured reading of a coordinate text.
type Token struct {
	Negative bool
	// Groups holds degrees, minutes and seconds, in that order. Missing
	// trailing groups are absent.
	Groups []float64
	// Letter is the first hemisphere letter found, upper case, or 0.
	Letter rune
	Axis   Axis
}

const maxGroups = 3

func isDirection(r rune) bool {
	switch unicode.ToUpper(r) {
	case 'N', 'S', 'E', 'W':
		return true
	}
	return false
}

func isNumeric(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}

// Scan tokenizes a single coordinate. A leading '-' or any W or S letter
// makes the value negative. An E or W letter means longitude, otherwise an N
// or S letter means latitude.
func Scan(text string) Token {
	text = strings.TrimSpace(text)

	var tok Token
	if strings.HasPrefix(text, "-") {
		tok.Negative = true
	}

	var ew, ns bool
	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if v, ok := leadingFloat(run.String()); ok && len(tok.Groups) < maxGroups {
			tok.Groups = append(tok.Groups, v)
		}
		run.Reset()
	}

	for _, r := range text {
		if isNumeric(r) {
			run.WriteRune(r)
			continue
		}
		flush()
		if !isDirection(r) {
			continue
		}
		u := unicode.ToUpper(r)
		if tok.Letter == 0 {
			tok.Letter = u
		}
		switch u {
		case 'W':
			tok.Negative = true
			ew = true
		case 'E':
			ew = true
		case 'S':
			tok.Negative = true
			ns = true
		case 'N':
			ns = true
		}
	}
	flush()

	if ew {
		tok.Axis = Longitude
	} else if ns {
		tok.Axis = Latitude
	}

	return tok
}

// leadingFloat parses the longest number at the start of a run of digits and
// dots, so that "40.5.3" reads as 40.5. Runs without a digit are rejected.
func leadingFloat(run string) (float64, bool) {
	end := 0
	dot := false
	digits := false
	for end < len(run) {
		c := run[end]
		if c == '.' {
			if dot {
				break
			}
			dot = true
		} else {
			digits = true
		}
		end++
	}
	if !digits {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(run[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Valid reports whether at least one numeric group was found.
func (t Token) Valid() bool {
	return len(t.Groups) > 0
}

// Degrees combines the groups into signed decimal degrees.
func (t Token) Degrees() float64 {
	if !t.Valid() {
		return math.NaN()
	}
	n := t.Groups[0]
	if len(t.Groups) > 1 {
		n += t.Groups[1] / 60
	}
	if len(t.Groups) > 2 {
		n += t.Groups[2] / 3600
	}
	if t.Negative && n >= 0 {
		n = 0 - n
	}
	return n
}

// Options controls how Parse renders its result.
type Options struct {
	// Axis overrides the axis inferred from the text.
	Axis   Axis
	Format Format
	Spaced bool
}

// Parse reads a coordinate and renders it in the requested format. It
// returns "" when the text holds no number.
func Parse(text string, opts Options) string {
	tok := Scan(text)
	if !tok.Valid() {
		return ""
	}
	axis := opts.Axis
	if axis == Unknown {
		axis = tok.Axis
	}

	n := tok.Degrees()
	spacer := ""
	if opts.Spaced {
		spacer = " "
	}

	switch opts.Format {
	case DMM:
		return FormatDMM(n, axis, spacer, "")
	case DMS:
		return FormatDMS(n, axis, spacer)
	}
	return FormatDDD(n)
}

// ParseDegrees reads a coordinate as signed decimal degrees.
func ParseDegrees(text string) (float64, Axis, bool) {
	tok := Scan(text)
	if !tok.Valid() {
		return math.NaN(), Unknown, false
	}
	return tok.Degrees(), tok.Axis, true
}

// Combine joins a latitude and a longitude text, or returns "" if either is empty.
func Combine(lat, lon string) string {
	if lat == "" || lon == "" {
		return ""
	}
	return lat + "," + lon
}

func formatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
