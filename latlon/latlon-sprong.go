package latlon

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// DefaultCorrections is the number of oblateness correction passes run by Sprong.
const DefaultCorrections = 5

// Sprong solves the spherical triangle formed by the pole, the start and the
// destination, measuring angles counter-clockwise, on a sphere of equatorial
// radius. The result is then rescaled a fixed number of times so that its
// ellipsoidal distance from the start matches the requested distance.
type Sprong struct {
	// Corrector measures the distance used for the correction passes.
	// Vincenty is used when nil.
	Corrector Distancer
	// Corrections defaults to DefaultCorrections when zero. A negative value
	// disables the correction.
	Corrections int
}

func (s Sprong) Destination(from LatLon, bearing float64, distance float64) LatLon {
	to := sprong(from, bearing, distance)

	corrector := s.Corrector
	if corrector == nil {
		corrector = Vincenty{}
	}
	n := s.Corrections
	if n == 0 {
		n = DefaultCorrections
	}

	for i := 0; i < n; i++ {
		if math.Abs(from.Lon-to.Lon) > 180 {
			log.Debugf("Sprong correction %d skipped, longitude delta from %f to %f", i, from.Lon, to.Lon)
			continue
		}
		d, err := corrector.DistanceTo(from, to)
		if err != nil {
			log.Debugf("Sprong correction %d skipped : %v", i, err)
			continue
		}
		ratio := 1.0
		if d != 0 {
			ratio = distance / d
		}
		to = LatLon{
			Lat: from.Lat + (to.Lat-from.Lat)*ratio,
			Lon: from.Lon + (to.Lon-from.Lon)*ratio,
		}
	}

	return to
}

func sprong(from LatLon, bearing float64, distance float64) LatLon {
	if math.Abs(bearing) >= 360 {
		bearing = math.Mod(bearing, 360)
	}
	if bearing < 0 {
		bearing += 360
	}
	east := bearing <= 180

	a := ToRadians(360 - bearing)
	bb := π/2 - ToRadians(from.Lat)
	cc := distance / equatorialRadius

	sinBB, cosBB := math.Sincos(bb)
	cosCC := math.Cos(cc)

	cosAA := clampUnit(cosBB*cosCC + sinBB*math.Sin(cc)*math.Cos(a))
	aa := acosUnit(cosAA)

	cosC := clampUnit((cosCC - cosAA*cosBB) / (math.Sin(aa) * sinBB))
	c := acosUnit(cosC)

	φ2 := π/2 - aa
	λ2 := ToRadians(from.Lon) - c
	if east {
		λ2 = ToRadians(from.Lon) + c
	}
	// (-π, π]
	if λ2 > π {
		λ2 -= 2 * π
	}
	if λ2 < -π {
		λ2 += 2 * π
	}

	return LatLon{Lat: ToDegrees(φ2), Lon: ToDegrees(λ2)}
}

func clampUnit(x float64) float64 {
	if x <= -1 {
		return -1
	}
	if x >= 1 {
		return 1
	}
	return x
}

// acosUnit treats arguments equal to 1 at 15 decimal places as a zero angle.
func acosUnit(x float64) float64 {
	if Round(x, 15) == 1 {
		return 0
	}
	return math.Acos(x)
}
