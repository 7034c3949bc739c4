package latlon

import "math"

// MeanRadius is the "average" earth radius used by GreatCircle.
const MeanRadius = 6371e3

// GreatCircle solves destinations on a sphere in a single shot. It is cheaper
// and less accurate than Sprong.
type GreatCircle struct{}

func (GreatCircle) Destination(from LatLon, bearing float64, distance float64) LatLon {
	φ1 := ToRadians(from.Lat)
	λ1 := ToRadians(from.Lon)
	θ := ToRadians(bearing)

	δ := distance / MeanRadius

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	// [-π, π)
	λ2 = math.Mod(λ2+π, 2*π)
	if λ2 < 0 {
		λ2 += 2 * π
	}
	λ2 -= π

	return LatLon{Lat: ToDegrees(φ2), Lon: ToDegrees(λ2)}
}
