package ephcore

// Frame names the reference frame a StateVector is expressed in.
type Frame int

const (
	// IcrfJ2000 is the kernel-native frame: the International Celestial
	// Reference Frame, effectively J2000 equatorial.
	IcrfJ2000 Frame = iota
	// EclipticJ2000 is ICRF rotated about X by the fixed mean obliquity.
	EclipticJ2000
	// EclipticOfDate is EclipticJ2000 precessed to the query epoch
	// using the engine's configured precession model.
	EclipticOfDate
)

func (f Frame) String() string {
	switch f {
	case IcrfJ2000:
		return "IcrfJ2000"
	case EclipticJ2000:
		return "EclipticJ2000"
	case EclipticOfDate:
		return "EclipticOfDate"
	default:
		return "UnknownFrame"
	}
}
