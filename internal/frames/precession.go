package frames

import "math"

// PrecessionModel selects which ecliptic-precession series to evaluate.
// This is a closed tagged variant (spec.md §9: "no inheritance or
// dynamic interface is needed beyond this closed set").
type PrecessionModel int

const (
	// Lieske1977 is the 3rd-order IAU 1976 polynomial, retained for
	// legacy cross-checks.
	Lieske1977 PrecessionModel = iota
	// Iau2006 is the 5th-order Capitaine, Wallace & Chapront 2003 series.
	Iau2006
	// Vondrak2011 is the long-term periodic series and is the default
	// model per spec.md §3.
	Vondrak2011
)

// DefaultPrecessionModel is the model used when none is configured.
const DefaultPrecessionModel = Vondrak2011

func (m PrecessionModel) String() string {
	switch m {
	case Lieske1977:
		return "Lieske1977"
	case Iau2006:
		return "Iau2006"
	case Vondrak2011:
		return "Vondrak2011"
	default:
		return "Unknown"
	}
}

const as2r = math.Pi / 648_000.0
const tau = 2 * math.Pi

type vondrakTerm1 struct {
	periodCenturies float64
	ap, bp, aq, bq  float64
}

type vondrakTerm3 struct {
	periodCenturies float64
	cp, sp          float64
}

// vonTable1Terms is the 8-term P/Q periodic series (Vondrák, Capitaine &
// Wallace 2011, A&A 534, A22, Table 1).
var vonTable1Terms = [8]vondrakTerm1{
	{708.15, -5486.751211, -684.661560, 667.666730, -5523.863691},
	{2309.0, -17.127623, 2446.283880, -2354.886252, -549.747450},
	{1620.0, -617.517403, 399.671049, -428.152441, -310.998056},
	{492.2, 413.442940, -356.652376, 376.202861, 421.535876},
	{1183.0, 78.614193, -186.387003, 184.778874, -36.776172},
	{622.0, -180.732815, -316.800070, 335.321713, -145.278396},
	{882.0, -87.676083, 198.296701, -185.138669, -34.744450},
	{547.0, 46.140315, 101.135679, -120.972830, 22.885731},
}

// vonTable3Terms is the 10-term general-precession periodic series.
var vonTable3Terms = [10]vondrakTerm3{
	{409.90, -6908.287473, -2845.175469},
	{396.15, -3198.706291, 449.844989},
	{537.22, 1453.674527, -1255.915323},
	{402.90, -857.748557, 886.736783},
	{417.15, 1173.231614, 418.887514},
	{288.92, -156.981465, 997.912441},
	{4043.00, 371.836550, -240.979710},
	{306.00, -216.619040, 76.541307},
	{277.00, 193.691479, -36.788069},
	{203.00, 11.891524, -170.964086},
}

func vondrakArg(t, periodCenturies float64) float64 {
	return tau * t / periodCenturies
}

func vondrakPQRawRad(t float64) (p, q float64) {
	t2 := t * t
	t3 := t2 * t
	pArcsec := 5851.607687 - 0.1189000*t - 0.00028913*t2 + 0.000000101*t3
	qArcsec := -1600.886300 + 1.1689818*t - 0.00000020*t2 - 0.000000437*t3
	for _, term := range vonTable1Terms {
		s, c := math.Sincos(vondrakArg(t, term.periodCenturies))
		pArcsec += term.ap*c - term.bp*s
		qArcsec += term.aq*c + term.bq*s
	}
	return pArcsec * as2r, qArcsec * as2r
}

func vondrakPQRad(t float64) (p, q float64) {
	p, q = vondrakPQRawRad(t)
	p0, q0 := vondrakPQRawRad(0)
	return p - p0, q - q0
}

func vondrakPiCapPiRad(t float64) (piA, capPiA float64) {
	p, q := vondrakPQRad(t)
	sinPi := math.Min(math.Sqrt(p*p+q*q), 1.0)
	piA = math.Asin(sinPi)
	capPiA = math.Mod(math.Atan2(p, q), tau)
	if capPiA < 0 {
		capPiA += tau
	}
	return piA, capPiA
}

// ---------- Lieske 1977 / IAU 1976 ----------

func lieske1977GeneralPrecessionLongitudeArcsec(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 5029.0966*t + 1.11113*t2 - 0.000006*t3
}

func lieske1977EclipticInclinationArcsec(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 47.0029*t - 0.06603*t2 + 0.000598*t3
}

func lieske1977EclipticNodeLongitudeArcsec(t float64) float64 {
	t2 := t * t
	return 629_554.982 + 3289.4789*t + 0.60622*t2
}

// ---------- IAU 2006 ----------

func iau2006GeneralPrecessionLongitudeArcsec(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	t5 := t4 * t
	return 5028.796195*t + 1.1054348*t2 + 0.00007964*t3 - 0.000023857*t4 - 0.0000000383*t5
}

func iau2006EclipticInclinationArcsec(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	t5 := t4 * t
	return 46.998973*t - 0.0334926*t2 - 0.00012559*t3 + 0.000000113*t4 - 0.0000000022*t5
}

func iau2006EclipticNodeLongitudeArcsec(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	t5 := t4 * t
	return 629_546.7936 + 3289.4789*t + 0.60622*t2 - 0.00083*t3 - 0.00001*t4 - 0.00000001*t5
}

// ---------- Vondrák, Capitaine & Wallace 2011 ----------

func vondrak2011GeneralPrecessionRawArcsec(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	pA := 8134.017132 + 5043.0520035*t - 0.00710733*t2 + 0.000000271*t3
	for _, term := range vonTable3Terms {
		s, c := math.Sincos(vondrakArg(t, term.periodCenturies))
		pA += term.cp*c + term.sp*s
	}
	return pA
}

func vondrak2011GeneralPrecessionLongitudeArcsec(t float64) float64 {
	return vondrak2011GeneralPrecessionRawArcsec(t) - vondrak2011GeneralPrecessionRawArcsec(0)
}

func vondrak2011EclipticInclinationArcsec(t float64) float64 {
	piA, _ := vondrakPiCapPiRad(t)
	return piA * 180.0 / math.Pi * 3600.0
}

func vondrak2011EclipticNodeLongitudeArcsec(t float64) float64 {
	_, capPiA := vondrakPiCapPiRad(t)
	return capPiA * 180.0 / math.Pi * 3600.0
}

// GeneralPrecessionLongitudeArcsec returns p_A: the general precession in
// ecliptic longitude, in arcseconds, for model at t Julian centuries of
// TDB since J2000.0. Positive means the equinox has moved westward.
func GeneralPrecessionLongitudeArcsec(t float64, model PrecessionModel) float64 {
	switch model {
	case Lieske1977:
		return lieske1977GeneralPrecessionLongitudeArcsec(t)
	case Iau2006:
		return iau2006GeneralPrecessionLongitudeArcsec(t)
	default:
		return vondrak2011GeneralPrecessionLongitudeArcsec(t)
	}
}

// EclipticInclinationArcsec returns pi_A: the inclination of the ecliptic
// of date to the J2000 ecliptic, in arcseconds.
func EclipticInclinationArcsec(t float64, model PrecessionModel) float64 {
	switch model {
	case Lieske1977:
		return lieske1977EclipticInclinationArcsec(t)
	case Iau2006:
		return iau2006EclipticInclinationArcsec(t)
	default:
		return vondrak2011EclipticInclinationArcsec(t)
	}
}

// EclipticNodeLongitudeArcsec returns Pi_A: the longitude of the
// ascending node of the ecliptic of date on the J2000 ecliptic, in
// arcseconds.
func EclipticNodeLongitudeArcsec(t float64, model PrecessionModel) float64 {
	switch model {
	case Lieske1977:
		return lieske1977EclipticNodeLongitudeArcsec(t)
	case Iau2006:
		return iau2006EclipticNodeLongitudeArcsec(t)
	default:
		return vondrak2011EclipticNodeLongitudeArcsec(t)
	}
}

// PrecessEclipticJ2000ToDate applies the full ecliptic precession
// rotation P(t) = R3(-(Pi_A + p_A)) . R1(pi_A) . R3(Pi_A) to v, per
// spec.md §4.3. Returns v unchanged at t=0.
func PrecessEclipticJ2000ToDate(v [3]float64, t float64, model PrecessionModel) [3]float64 {
	if math.Abs(t) < 1e-15 {
		return v
	}

	piA := toRad(EclipticInclinationArcsec(t, model) / 3600.0)
	capPiA := toRad(EclipticNodeLongitudeArcsec(t, model) / 3600.0)
	pA := toRad(GeneralPrecessionLongitudeArcsec(t, model) / 3600.0)

	s1, c1 := math.Sincos(capPiA)
	x1 := c1*v[0] + s1*v[1]
	y1 := -s1*v[0] + c1*v[1]
	z1 := v[2]

	s2, c2 := math.Sincos(piA)
	x2 := x1
	y2 := c2*y1 + s2*z1
	z2 := -s2*y1 + c2*z1

	s3, c3 := math.Sincos(-(capPiA + pA))
	return [3]float64{c3*x2 + s3*y2, -s3*x2 + c3*y2, z2}
}

// PrecessEclipticDateToJ2000 applies P^-1 = P^T to v, the inverse of
// PrecessEclipticJ2000ToDate.
func PrecessEclipticDateToJ2000(v [3]float64, t float64, model PrecessionModel) [3]float64 {
	if math.Abs(t) < 1e-15 {
		return v
	}

	piA := toRad(EclipticInclinationArcsec(t, model) / 3600.0)
	capPiA := toRad(EclipticNodeLongitudeArcsec(t, model) / 3600.0)
	pA := toRad(GeneralPrecessionLongitudeArcsec(t, model) / 3600.0)

	s1, c1 := math.Sincos(capPiA + pA)
	x1 := c1*v[0] + s1*v[1]
	y1 := -s1*v[0] + c1*v[1]
	z1 := v[2]

	s2, c2 := math.Sincos(-piA)
	x2 := x1
	y2 := c2*y1 + s2*z1
	z2 := -s2*y1 + c2*z1

	s3, c3 := math.Sincos(-capPiA)
	return [3]float64{c3*x2 + s3*y2, -s3*x2 + c3*y2, z2}
}

func toRad(deg float64) float64 { return deg * math.Pi / 180.0 }
