// Package calc is the text in, text out face of the geodesy engine. Every
// operation takes what a user typed and returns what should be displayed.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/a-bouts/geo-calc/coord"
	"github.com/a-bouts/geo-calc/latlon"
	"github.com/a-bouts/geo-calc/units"
)

const notApplicable = "n/a"

var ErrNoPair = errors.New("calc: expected a latitude and a longitude separated by a comma")

// Strategies lists the destination solvers by name.
var Strategies = map[string]latlon.Destinator{
	"sprong":      latlon.Sprong{},
	"greatcircle": latlon.GreatCircle{},
}

// Strategy returns the named destination solver. The empty name selects sprong.
func Strategy(name string) (latlon.Destinator, error) {
	if name == "" {
		name = "sprong"
	}
	d, ok := Strategies[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown destination strategy '%s'", name)
	}
	return d, nil
}

type Calculator struct {
	Destinator latlon.Destinator
	// Units is the system used for distances typed without a unit.
	Units units.System
}

func New(d latlon.Destinator, s units.System) Calculator {
	return Calculator{Destinator: d, Units: s}
}

type Conversion struct {
	LatDDD  string `json:"latDDD"`
	LonDDD  string `json:"lonDDD"`
	LatDMM  string `json:"latDMM"`
	LonDMM  string `json:"lonDMM"`
	LatDMS  string `json:"latDMS"`
	LonDMS  string `json:"lonDMS"`
	PairDDD string `json:"pairDDD"`
	PairDMM string `json:"pairDMM"`
	PairDMS string `json:"pairDMS"`
}

// Convert renders a latitude and a longitude in every notation.
func Convert(lat, lon string, spaced bool) Conversion {
	var c Conversion
	parse := func(s string, axis coord.Axis, f coord.Format) string {
		return coord.Parse(s, coord.Options{Axis: axis, Format: f, Spaced: spaced})
	}
	c.LatDDD = parse(lat, coord.Latitude, coord.DDD)
	c.LonDDD = parse(lon, coord.Longitude, coord.DDD)
	c.LatDMM = parse(lat, coord.Latitude, coord.DMM)
	c.LonDMM = parse(lon, coord.Longitude, coord.DMM)
	c.LatDMS = parse(lat, coord.Latitude, coord.DMS)
	c.LonDMS = parse(lon, coord.Longitude, coord.DMS)
	c.PairDDD = c.LatDDD + ", " + c.LonDDD
	c.PairDMM = c.LatDMM + ", " + c.LonDMM
	c.PairDMS = c.LatDMS + ", " + c.LonDMS
	return c
}

type DistanceResult struct {
	From     latlon.LatLon `json:"from"`
	To       latlon.LatLon `json:"to"`
	Meters   float64       `json:"-"`
	Metric   string        `json:"metric"`
	US       string        `json:"us"`
	Nautical string        `json:"nautical"`
	Bearing  string        `json:"bearing"`
}

// ParsePoint reads "lat, lon" text. The pair order is taken as written.
func ParsePoint(text string) (latlon.LatLon, error) {
	parts := strings.Split(text, ",")
	if len(parts) < 2 {
		return latlon.LatLon{}, ErrNoPair
	}
	lat, _, ok := coord.ParseDegrees(parts[0])
	if !ok {
		return latlon.LatLon{}, fmt.Errorf("no latitude in '%s'", parts[0])
	}
	lon, _, ok := coord.ParseDegrees(parts[1])
	if !ok {
		return latlon.LatLon{}, fmt.Errorf("no longitude in '%s'", parts[1])
	}
	return latlon.LatLon{Lat: lat, Lon: lon}, nil
}

// Distance measures the ellipsoidal distance between two "lat, lon" texts
// and renders it in every unit system, together with the initial bearing.
func Distance(from, to string) (DistanceResult, error) {
	p1, err := ParsePoint(from)
	if err != nil {
		return DistanceResult{}, err
	}
	p2, err := ParsePoint(to)
	if err != nil {
		return DistanceResult{}, err
	}
	return Measure(p1, p2), nil
}

// Measure renders the ellipsoidal distance and bearing between two points.
// Out of range points and non convergent solutions render as "n/a".
func Measure(from, to latlon.LatLon) DistanceResult {
	r := DistanceResult{From: from, To: to, Bearing: Bearing(from, to)}

	m, err := latlon.Vincenty{}.DistanceTo(from, to)
	if err != nil {
		r.Meters = math.NaN()
		r.Metric, r.US, r.Nautical = notApplicable, notApplicable, notApplicable
		return r
	}
	r.Meters = m
	r.Metric = units.Format(m, units.Metric)
	r.US = units.Format(m, units.USCustomary)
	r.Nautical = units.Format(m, units.Nautical)
	return r
}

// ApproxDistance renders the haversine distance between two points.
func ApproxDistance(from, to latlon.LatLon, s units.System) string {
	m, err := latlon.Haversine{}.DistanceTo(from, to)
	if err != nil {
		return notApplicable
	}
	return units.FormatApprox(m, s)
}

// Bearing renders the initial bearing from one point to another, rounded to
// three decimals.
func Bearing(from, to latlon.LatLon) string {
	b, err := latlon.InitialBearing(from, to)
	if err != nil {
		return notApplicable
	}
	b = latlon.Wrap360(latlon.Round(b, 3))
	return strconv.FormatFloat(b, 'f', -1, 64) + "°"
}

type DestinationResult struct {
	Point latlon.LatLon `json:"-"`
	Lat   string        `json:"lat"`
	Lon   string        `json:"lon"`
	Pair  string        `json:"pair"`
	// Units is the unit family the distance was typed in, and System the
	// system the round trip should be shown in.
	Units  units.Family `json:"-"`
	System units.System `json:"-"`
}

// Destination returns the point reached from the start after travelling the
// typed distance along the typed bearing. Unreadable input yields NaN
// coordinates rather than an error.
func (c Calculator) Destination(startLat, startLon, distance, bearing string) DestinationResult {
	lat, _, _ := coord.ParseDegrees(startLat)
	lon, _, _ := coord.ParseDegrees(startLon)
	d := units.ParseDistance(distance)
	b := latlon.Wrap360(coord.ParseBearing(bearing))

	solver := c.Destinator
	if solver == nil {
		solver = latlon.Sprong{}
	}
	p := solver.Destination(latlon.LatLon{Lat: lat, Lon: lon}, b, d.Meters)

	r := DestinationResult{
		Point:  p,
		Lat:    coord.FormatDDD(p.Lat),
		Lon:    coord.FormatDDD(p.Lon),
		Units:  d.Units,
		System: d.Units.System(c.Units),
	}
	if r.Lat != "" && r.Lon != "" {
		r.Pair = r.Lat + ", " + r.Lon
	}
	return r
}

// Locate recognizes a search text that is a coordinate pair.
func Locate(text string) (latlon.LatLon, bool) {
	return coord.LocatePair(text)
}
