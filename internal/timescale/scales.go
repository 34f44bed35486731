// Package timescale converts between UTC, TAI, TT, and TDB, and computes
// Earth Rotation Angle, Greenwich Mean Sidereal Time, and mean obliquity
// of date.
//
// Grounded on original_source/crates/eph_time/src/scales.rs for the exact
// conversion chain and original_source/crates/dhruv_time/src/julian.rs
// for the TDB-seconds-past-J2000 internal representation.
package timescale

import (
	"math"
	"sort"
)

// LookupDeltaAT returns the cumulative TAI-UTC offset for a UTC epoch
// (seconds past J2000 on the uniform UTC axis), via binary search on the
// sorted leap-second table. Returns 0 for epochs before the first entry
// (pre-1972), matching NAIF's own convention.
func LookupDeltaAT(utcSeconds float64, lsk *LskData) float64 {
	table := lsk.LeapSeconds
	if len(table) == 0 {
		return 0
	}

	// Find the last entry whose epoch <= utcSeconds.
	i := sort.Search(len(table), func(i int) bool {
		return table[i].UTCEpochTDBLikeSeconds > utcSeconds
	})
	if i == 0 {
		return 0
	}
	return table[i-1].OffsetSeconds
}

// UTCToTAI converts UTC seconds past J2000 to TAI seconds past J2000.
func UTCToTAI(utcS float64, lsk *LskData) float64 {
	return utcS + LookupDeltaAT(utcS, lsk)
}

// TAIToTT converts TAI seconds past J2000 to TT seconds past J2000.
// TT = TAI + 32.184s, exact by IAU definition.
func TAIToTT(taiS float64, lsk *LskData) float64 {
	return taiS + lsk.DeltaTA
}

// TTToTAI converts TT seconds past J2000 to TAI seconds past J2000.
func TTToTAI(ttS float64, lsk *LskData) float64 {
	return ttS - lsk.DeltaTA
}

// TTToTDB converts TT seconds past J2000 to TDB seconds past J2000 using
// the NAIF one-term sinusoidal approximation (accurate to ~30us):
//
//	M = M0 + M1*TT
//	E = M + EB*sin(M)
//	TDB = TT + K*sin(E)
func TTToTDB(ttS float64, lsk *LskData) float64 {
	m := lsk.M0 + lsk.M1*ttS
	e := m + lsk.EB*math.Sin(m)
	return ttS + lsk.K*math.Sin(e)
}

// TDBToTT inverts TTToTDB. Since the correction is tiny (~1.6ms), using
// TDB as a proxy for TT when computing M introduces negligible error.
func TDBToTT(tdbS float64, lsk *LskData) float64 {
	m := lsk.M0 + lsk.M1*tdbS
	e := m + lsk.EB*math.Sin(m)
	return tdbS - lsk.K*math.Sin(e)
}

// UTCToTDB performs the full forward conversion: UTC -> TAI -> TT -> TDB.
func UTCToTDB(utcS float64, lsk *LskData) float64 {
	tai := UTCToTAI(utcS, lsk)
	tt := TAIToTT(tai, lsk)
	return TTToTDB(tt, lsk)
}

// TDBToUTC performs the full inverse conversion, iterating because the
// leap-second lookup itself depends on UTC. Converges in 2-3 iterations.
func TDBToUTC(tdbS float64, lsk *LskData) float64 {
	tt := TDBToTT(tdbS, lsk)
	tai := TTToTAI(tt, lsk)

	utc := tai // initial guess, off by the leap-second offset
	for i := 0; i < 3; i++ {
		delta := LookupDeltaAT(utc, lsk)
		utc = tai - delta
	}
	return utc
}

// UT1FromUTC computes UT1 = UTC + DUT1, with dut1 in seconds (as returned
// by the EOP table lookup).
func UT1FromUTC(utcS, dut1 float64) float64 {
	return utcS + dut1
}
