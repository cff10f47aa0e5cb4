package core

import "math"

// EarthRadiusM is the mean Earth radius used for path geometry (metres).
const EarthRadiusM = 6371000.0

// Vec3 is an Earth-centred vector. Path geometry only uses unit vectors.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Scale returns v * k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns v × other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func unitVector(p GeoPoint) Vec3 {
	lat := p.Latitude * math.Pi / 180
	lon := p.Longitude * math.Pi / 180
	return Vec3{
		X: math.Cos(lat) * math.Cos(lon),
		Y: math.Cos(lat) * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

// centralAngle returns the angle (radians) between two unit vectors. The
// atan2 form stays accurate for both very short and near-antipodal paths.
func centralAngle(a, b Vec3) float64 {
	return math.Atan2(a.Cross(b).Norm(), a.Dot(b))
}

// GreatCircleDistance returns the surface distance between a and b in
// metres. Altitudes are ignored.
func GreatCircleDistance(a, b GeoPoint) float64 {
	return EarthRadiusM * centralAngle(unitVector(a), unitVector(b))
}

// Interpolate returns the point a fraction f of the way from a to b along
// the great circle. Altitude is interpolated linearly. For antipodal
// endpoints the path is undefined and a is returned.
func Interpolate(a, b GeoPoint, f float64) GeoPoint {
	alt := a.Altitude + (b.Altitude-a.Altitude)*f
	ua, ub := unitVector(a), unitVector(b)
	omega := centralAngle(ua, ub)
	sinOmega := math.Sin(omega)
	if omega < 1e-12 || sinOmega < 1e-12 {
		return GeoPoint{Latitude: a.Latitude, Longitude: a.Longitude, Altitude: alt}
	}

	v := ua.Scale(math.Sin((1-f)*omega) / sinOmega).Add(ub.Scale(math.Sin(f*omega) / sinOmega))
	return GeoPoint{
		Latitude:  math.Atan2(v.Z, math.Hypot(v.X, v.Y)) * 180 / math.Pi,
		Longitude: math.Atan2(v.Y, v.X) * 180 / math.Pi,
		Altitude:  alt,
	}
}
