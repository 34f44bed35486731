package frames

// SecondsPerCentury converts a duration in seconds to Julian centuries,
// the unit every precession polynomial here is parameterized in.
const SecondsPerCentury = 36525.0 * 86400.0

// finiteDiffHalfStepSeconds is the +-60s window spec.md §4.3 specifies
// for finite-differencing the precessed position to get velocity
// ("captures the P-dot . r cross-term without requiring symbolic
// derivatives of the periodic series").
const finiteDiffHalfStepSeconds = 60.0

// PrecessEclipticStateJ2000ToDate precesses both position (km) and
// velocity (km/s) from J2000 ecliptic to ecliptic-of-date. Velocity is
// obtained by finite-differencing the precessed position at t +- 60s,
// per spec.md §4.3.
func PrecessEclipticStateJ2000ToDate(posKM, velKMS [3]float64, tCenturies float64, model PrecessionModel) (outPosKM, outVelKMS [3]float64) {
	outPosKM = PrecessEclipticJ2000ToDate(posKM, tCenturies, model)

	dtCenturies := finiteDiffHalfStepSeconds / SecondsPerCentury
	var posPlus, posMinus [3]float64
	for i := 0; i < 3; i++ {
		posPlus[i] = posKM[i] + velKMS[i]*finiteDiffHalfStepSeconds
		posMinus[i] = posKM[i] - velKMS[i]*finiteDiffHalfStepSeconds
	}

	datedPlus := PrecessEclipticJ2000ToDate(posPlus, tCenturies+dtCenturies, model)
	datedMinus := PrecessEclipticJ2000ToDate(posMinus, tCenturies-dtCenturies, model)

	for i := 0; i < 3; i++ {
		outVelKMS[i] = (datedPlus[i] - datedMinus[i]) / (2 * finiteDiffHalfStepSeconds)
	}
	return outPosKM, outVelKMS
}

// PrecessEclipticStateDateToJ2000 is the inverse of
// PrecessEclipticStateJ2000ToDate.
func PrecessEclipticStateDateToJ2000(posKM, velKMS [3]float64, tCenturies float64, model PrecessionModel) (outPosKM, outVelKMS [3]float64) {
	outPosKM = PrecessEclipticDateToJ2000(posKM, tCenturies, model)

	dtCenturies := finiteDiffHalfStepSeconds / SecondsPerCentury
	var posPlus, posMinus [3]float64
	for i := 0; i < 3; i++ {
		posPlus[i] = posKM[i] + velKMS[i]*finiteDiffHalfStepSeconds
		posMinus[i] = posKM[i] - velKMS[i]*finiteDiffHalfStepSeconds
	}

	j2000Plus := PrecessEclipticDateToJ2000(posPlus, tCenturies+dtCenturies, model)
	j2000Minus := PrecessEclipticDateToJ2000(posMinus, tCenturies-dtCenturies, model)

	for i := 0; i < 3; i++ {
		outVelKMS[i] = (j2000Plus[i] - j2000Minus[i]) / (2 * finiteDiffHalfStepSeconds)
	}
	return outPosKM, outVelKMS
}
