package latlon

import "math"

const (
	equatorialRadius = 6378137.0
	polarRadius      = 6356752.0
)

// r45 is the earth radius at 45° of latitude.
var r45 = func() float64 {
	s := math.Sin(ToRadians(45))
	return equatorialRadius * math.Sqrt(1+((polarRadius*polarRadius-equatorialRadius*equatorialRadius)/(equatorialRadius*equatorialRadius))*s*s)
}()

type Haversine struct{}

func (Haversine) DistanceTo(from, to LatLon) (float64, error) {
	if !inRange(from, to) {
		return math.NaN(), ErrOutOfRange
	}

	φ1 := ToRadians(from.Lat)
	φ2 := ToRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := ToRadians(to.Lon - from.Lon)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return r45 * δ, nil
}

// InitialBearingRadians returns the raw great circle azimuth at from, in (-π, π].
func InitialBearingRadians(from, to LatLon) (float64, error) {
	if !inRange(from, to) {
		return math.NaN(), ErrOutOfRange
	}

	φ1 := ToRadians(from.Lat)
	φ2 := ToRadians(to.Lat)

	Δλ := ToRadians(to.Lon - from.Lon)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)

	return math.Atan2(y, x), nil
}

// InitialBearing returns the great circle azimuth at from in degrees, in [0, 360).
func InitialBearing(from, to LatLon) (float64, error) {
	θ, err := InitialBearingRadians(from, to)
	if err != nil {
		return θ, err
	}
	return Wrap360(ToDegrees(θ)), nil
}
