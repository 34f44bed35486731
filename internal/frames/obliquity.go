// Package frames implements the static ICRF/J2000 <-> Ecliptic-J2000
// rotation and the three selectable ecliptic-precession models that
// transform Ecliptic-J2000 to and from Ecliptic-of-date.
//
// Grounded on original_source/crates/eph_frames/src/rotation.rs and
// original_source/crates/dhruv_frames/src/{obliquity,precession}.rs.
package frames

import "math"

// ObliquityJ2000Rad is the mean obliquity of the ecliptic at J2000.0
// (IAU 1976), in radians: 23 deg 26' 21.448" = 84381.448".
const ObliquityJ2000Rad = 23.4392911111 * math.Pi / 180.0

// ObliquityJ2000Deg is ObliquityJ2000Rad expressed in degrees.
const ObliquityJ2000Deg = 23.4392911111

// CosObl and SinObl are the precomputed trig values of ObliquityJ2000Rad,
// used directly by the rotation matrix to avoid recomputing them per call.
const (
	CosObl = 0.9174820620692589
	SinObl = 0.3977771559317358
)

// IcrfToEcliptic rotates a 3-vector from ICRF/J2000 equatorial to
// Ecliptic J2000 (rotation about X by the fixed obliquity).
func IcrfToEcliptic(v [3]float64) [3]float64 {
	return [3]float64{
		v[0],
		CosObl*v[1] + SinObl*v[2],
		-SinObl*v[1] + CosObl*v[2],
	}
}

// EclipticToIcrf rotates a 3-vector from Ecliptic J2000 back to
// ICRF/J2000 equatorial. This is the transpose of IcrfToEcliptic.
func EclipticToIcrf(v [3]float64) [3]float64 {
	return [3]float64{
		v[0],
		CosObl*v[1] - SinObl*v[2],
		SinObl*v[1] + CosObl*v[2],
	}
}
