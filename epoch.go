package ephcore

import (
	"fmt"
	"math"

	"github.com/Mr-Pental21/ctara-dhruv-core/internal/timescale"
)

// TimeScale tags which of the five time scales an Epoch's seconds count
// is expressed in (GLOSSARY: "TDB / TT / TAI / UTC / UT1").
type TimeScale int

const (
	UTC TimeScale = iota
	TAI
	TT
	TDB
	UT1
)

func (s TimeScale) String() string {
	switch s {
	case UTC:
		return "UTC"
	case TAI:
		return "TAI"
	case TT:
		return "TT"
	case TDB:
		return "TDB"
	case UT1:
		return "UT1"
	default:
		return "UnknownScale"
	}
}

// Epoch is a point in time: a scale tag plus a count of seconds past
// J2000 (2000-01-01 12:00 in that scale). The kernel layer requires
// TDB; ToTDBSeconds performs whatever conversion chain is needed.
type Epoch struct {
	Scale            TimeScale
	SecondsPastJ2000 float64
}

// EpochFromJulianDayTDB builds a TDB epoch directly from a Julian Day
// number, the representation spec.md's golden vectors are given in.
func EpochFromJulianDayTDB(jd float64) Epoch {
	return Epoch{Scale: TDB, SecondsPastJ2000: timescale.JDToTDBSeconds(jd)}
}

// EpochFromJulianDay builds an epoch on the given scale from a Julian
// Day number in that same scale.
func EpochFromJulianDay(jd float64, scale TimeScale) Epoch {
	return Epoch{Scale: scale, SecondsPastJ2000: timescale.JDToTDBSeconds(jd)}
}

// JulianDay returns the Julian Day number corresponding to this
// epoch's seconds count, on its own scale.
func (e Epoch) JulianDay() float64 {
	return timescale.TDBSecondsToJD(e.SecondsPastJ2000)
}

// TicksPicoseconds returns the epoch's seconds-past-J2000 as an exact
// integer count of picoseconds, the cache fingerprint's key component
// (spec.md §4.5, §9: "floating-point epochs would produce fragile
// keys").
func (e Epoch) TicksPicoseconds() int64 {
	return int64(math.Round(e.SecondsPastJ2000 * 1e12))
}

// ToTDBSeconds converts e to seconds past J2000 TDB, the scale every
// kernel lookup requires. lsk must be non-nil for any scale other than
// TDB itself; eop may be nil (DUT1 treated as zero) and is only
// consulted when converting a UT1 epoch.
func (e Epoch) ToTDBSeconds(lsk *timescale.LskData, eop *timescale.EopTable) (float64, error) {
	switch e.Scale {
	case TDB:
		return e.SecondsPastJ2000, nil
	case TT:
		if lsk == nil {
			return 0, fmt.Errorf("%w: TT epoch requires a leap-second kernel", ErrTimeError)
		}
		return timescale.TTToTDB(e.SecondsPastJ2000, lsk), nil
	case TAI:
		if lsk == nil {
			return 0, fmt.Errorf("%w: TAI epoch requires a leap-second kernel", ErrTimeError)
		}
		tt := timescale.TAIToTT(e.SecondsPastJ2000, lsk)
		return timescale.TTToTDB(tt, lsk), nil
	case UTC:
		if lsk == nil {
			return 0, fmt.Errorf("%w: UTC epoch requires a leap-second kernel", ErrTimeError)
		}
		return timescale.UTCToTDB(e.SecondsPastJ2000, lsk), nil
	case UT1:
		if lsk == nil {
			return 0, fmt.Errorf("%w: UT1 epoch requires a leap-second kernel", ErrTimeError)
		}
		dut1 := 0.0
		if eop != nil {
			mjd := timescale.TDBSecondsToJD(e.SecondsPastJ2000) - 2_400_000.5
			dut1 = eop.DUT1(mjd)
		}
		utc := e.SecondsPastJ2000 - dut1
		return timescale.UTCToTDB(utc, lsk), nil
	default:
		return 0, fmt.Errorf("%w: unknown time scale %d", ErrTimeError, e.Scale)
	}
}

// CalendarDate is the Gregorian-calendar supplement to Epoch (ungrounded
// in spec.md's distillation but present in the original toolchain's
// dhruv_time::julian module — convenience conversions, not a new time
// representation).
type CalendarDate struct {
	Year  int
	Month int
	Day   float64 // may carry a fractional part for the time of day
}

// JulianDay converts the calendar date to a Julian Day number.
func (c CalendarDate) JulianDay() float64 {
	return timescale.CalendarToJD(c.Year, c.Month, c.Day)
}

// ToEpoch builds an Epoch on the given scale from this calendar date.
func (c CalendarDate) ToEpoch(scale TimeScale) Epoch {
	return Epoch{Scale: scale, SecondsPastJ2000: timescale.JDToTDBSeconds(c.JulianDay())}
}

// CalendarDateFromEpoch converts an epoch back to a calendar date on
// its own scale.
func CalendarDateFromEpoch(e Epoch) CalendarDate {
	year, month, day := timescale.JDToCalendar(e.JulianDay())
	return CalendarDate{Year: year, Month: month, Day: day}
}
