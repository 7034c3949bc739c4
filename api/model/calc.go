package model

import "github.com/a-bouts/geo-calc/latlon"

type Convert struct {
	Lat    string `json:"lat"`
	Lon    string `json:"lon"`
	Spaced bool   `json:"spaced"`
}

type Distance struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type DistanceResult struct {
	From     latlon.LatLon `json:"from"`
	To       latlon.LatLon `json:"to"`
	Meters   *float64      `json:"meters,omitempty"`
	Metric   string        `json:"metric"`
	US       string        `json:"us"`
	Nautical string        `json:"nautical"`
	Bearing  string        `json:"bearing"`
}

type Approx struct {
	From  latlon.LatLon `json:"from"`
	To    latlon.LatLon `json:"to"`
	Units string        `json:"units"`
}

type Destination struct {
	Lat      string `json:"lat"`
	Lon      string `json:"lon"`
	Distance string `json:"distance"`
	Bearing  string `json:"bearing"`
	Strategy string `json:"strategy"`
}

type DestinationResult struct {
	Lat   string `json:"lat"`
	Lon   string `json:"lon"`
	Pair  string `json:"pair"`
	Units string `json:"units"`
}

type Coordinate struct {
	Value string `json:"value"`
	Axis  string `json:"axis,omitempty"`
}
