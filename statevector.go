package ephcore

// StateVector is a Cartesian position/velocity pair with a frame tag.
// Position is in kilometers, velocity in kilometers per second.
type StateVector struct {
	PositionKM  [3]float64
	VelocityKMS [3]float64
	Frame       Frame
}

// Negate returns -sv, used to check the observer-symmetry property
// query(a,b) == -query(b,a) (spec.md §8).
func (sv StateVector) Negate() StateVector {
	return StateVector{
		PositionKM:  [3]float64{-sv.PositionKM[0], -sv.PositionKM[1], -sv.PositionKM[2]},
		VelocityKMS: [3]float64{-sv.VelocityKMS[0], -sv.VelocityKMS[1], -sv.VelocityKMS[2]},
		Frame:       sv.Frame,
	}
}

// Add returns the componentwise sum of sv and other, used to check the
// chain-additivity property query(a,b) + query(b,c) == query(a,c). The
// two frame tags must already agree; Add does not rotate frames.
func (sv StateVector) Add(other StateVector) StateVector {
	return StateVector{
		PositionKM: [3]float64{
			sv.PositionKM[0] + other.PositionKM[0],
			sv.PositionKM[1] + other.PositionKM[1],
			sv.PositionKM[2] + other.PositionKM[2],
		},
		VelocityKMS: [3]float64{
			sv.VelocityKMS[0] + other.VelocityKMS[0],
			sv.VelocityKMS[1] + other.VelocityKMS[1],
			sv.VelocityKMS[2] + other.VelocityKMS[2],
		},
		Frame: sv.Frame,
	}
}
