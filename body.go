package ephcore

import "fmt"

// Body is a NAIF integer body ID. Tier-1 bodies (Sun, Mercury, Venus,
// Earth, Moon) have direct body-center segments in DE442s; Tier-2/3
// bodies (Mars through Pluto) resolve to their system barycenter — see
// the Open Question recorded in DESIGN.md.
type Body int32

// Observer is a Body used as the reference point of a Query. The
// resolver treats Body-as-observer as "target minus observer, both
// reduced to SSB" (spec.md §3); SSB itself is observer zero.
type Observer = Body

// NAIF body IDs recognized by this engine. Bodies not named here are
// still accepted by Query if the loaded kernels cover them — Body is
// an open int32, not a closed enum.
const (
	SSB     Body = 0
	EMB     Body = 3 // Earth-Moon barycenter
	Mars    Body = 4
	Jupiter Body = 5
	Saturn  Body = 6
	Uranus  Body = 7
	Neptune Body = 8
	Pluto   Body = 9
	Sun     Body = 10
	Mercury Body = 199
	Venus   Body = 299
	Earth   Body = 399
	Moon    Body = 301
)

var bodyNames = map[Body]string{
	SSB:     "SSB",
	EMB:     "EarthMoonBarycenter",
	Mars:    "MarsBarycenter",
	Jupiter: "JupiterBarycenter",
	Saturn:  "SaturnBarycenter",
	Uranus:  "UranusBarycenter",
	Neptune: "NeptuneBarycenter",
	Pluto:   "PlutoBarycenter",
	Sun:     "Sun",
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Moon:    "Moon",
}

// String implements fmt.Stringer, printing a recognized body's name or
// its raw NAIF ID.
func (b Body) String() string {
	if name, ok := bodyNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Body(%d)", int32(b))
}

// Tier classifies a body for error-budget purposes (GLOSSARY: "Tier").
type Tier int

const (
	// TierUnknown covers bodies outside the three named tiers.
	TierUnknown Tier = iota
	// Tier1 is inner planets, the Moon, and the Sun.
	Tier1
	// Tier2 is the Mars, Jupiter, and Saturn barycenters.
	Tier2
	// Tier3 is the Uranus, Neptune, and Pluto barycenters.
	Tier3
)

// TierOf reports the error-budget tier of b.
func TierOf(b Body) Tier {
	switch b {
	case Sun, Mercury, Venus, Earth, Moon:
		return Tier1
	case Mars, Jupiter, Saturn:
		return Tier2
	case Uranus, Neptune, Pluto:
		return Tier3
	default:
		return TierUnknown
	}
}
