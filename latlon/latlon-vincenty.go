package latlon

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// WGS-84
const (
	wgs84A = 6378137.0
	wgs84B = 6356752.314245
	wgs84F = 1 / 298.257223563
)

const (
	vincentyIterations = 50
	vincentyTolerance  = 1e-12
)

type Vincenty struct{}

// DistanceTo returns the ellipsoidal distance in meters. NaN is returned
// together with ErrNoConvergence when the longitude refinement does not
// settle, which happens for nearly antipodal points.
func (Vincenty) DistanceTo(from, to LatLon) (float64, error) {
	if !inRange(from, to) {
		return math.NaN(), ErrOutOfRange
	}
	if from == to {
		return 0, nil
	}

	φ1 := ToRadians(from.Lat)
	φ2 := ToRadians(to.Lat)
	L := ToRadians(to.Lon - from.Lon)

	U1 := math.Atan((1 - wgs84F) * math.Tan(φ1))
	U2 := math.Atan((1 - wgs84F) * math.Tan(φ2))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	var sinσ, cosσ, σ, cosSqα, cos2σM float64

	λ := L
	converged := false
	for i := 0; i < vincentyIterations; i++ {
		sinλ, cosλ := math.Sincos(λ)
		sinσ = math.Sqrt((cosU2*sinλ)*(cosU2*sinλ) +
			(cosU1*sinU2-sinU1*cosU2*cosλ)*(cosU1*sinU2-sinU1*cosU2*cosλ))
		if sinσ == 0 {
			// coincident points
			return 0, nil
		}
		cosσ = sinU1*sinU2 + cosU1*cosU2*cosλ
		σ = math.Atan2(sinσ, cosσ)
		sinα := cosU1 * cosU2 * sinλ / sinσ
		cosSqα = 1 - sinα*sinα
		cos2σM = 0
		if cosSqα != 0 {
			// equatorial line otherwise
			cos2σM = cosσ - 2*sinU1*sinU2/cosSqα
		}
		C := wgs84F / 16 * cosSqα * (4 + wgs84F*(4-3*cosSqα))
		λʹ := λ
		λ = L + (1-C)*wgs84F*sinα*(σ+C*sinσ*(cos2σM+C*cosσ*(-1+2*cos2σM*cos2σM)))
		if math.Abs(λ-λʹ) <= vincentyTolerance {
			converged = true
			break
		}
	}
	if !converged {
		log.Debugf("Vincenty did not converge from (%f,%f) to (%f,%f)", from.Lat, from.Lon, to.Lat, to.Lon)
		return math.NaN(), ErrNoConvergence
	}

	uSq := cosSqα * (wgs84A*wgs84A - wgs84B*wgs84B) / (wgs84B * wgs84B)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	Δσ := B * sinσ * (cos2σM + B/4*(cosσ*(-1+2*cos2σM*cos2σM)-
		B/6*cos2σM*(-3+4*sinσ*sinσ)*(-3+4*cos2σM*cos2σM)))

	return wgs84B * A * (σ - Δσ), nil
}
