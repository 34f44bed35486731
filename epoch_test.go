package ephcore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mr-Pental21/ctara-dhruv-core/internal/timescale"
)

func TestTimeScaleString(t *testing.T) {
	require.Equal(t, "UTC", UTC.String())
	require.Equal(t, "TAI", TAI.String())
	require.Equal(t, "TT", TT.String())
	require.Equal(t, "TDB", TDB.String())
	require.Equal(t, "UT1", UT1.String())
	require.Equal(t, "UnknownScale", TimeScale(99).String())
}

func TestEpochFromJulianDayTDBAtJ2000IsZero(t *testing.T) {
	e := EpochFromJulianDayTDB(2_451_545.0)
	require.InDelta(t, 0, e.SecondsPastJ2000, 1e-9)
	require.Equal(t, TDB, e.Scale)
}

func TestEpochJulianDayRoundTrip(t *testing.T) {
	e := EpochFromJulianDayTDB(2_460_000.25)
	require.InDelta(t, 2_460_000.25, e.JulianDay(), 1e-9)
}

func TestEpochTicksPicosecondsIsExactInteger(t *testing.T) {
	e := Epoch{Scale: TDB, SecondsPastJ2000: 1.5}
	require.Equal(t, int64(1_500_000_000_000), e.TicksPicoseconds())
}

func TestEpochToTDBSecondsIdentityForTDB(t *testing.T) {
	e := Epoch{Scale: TDB, SecondsPastJ2000: 12345}
	got, err := e.ToTDBSeconds(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 12345.0, got)
}

func TestEpochToTDBSecondsRequiresLSKForNonTDB(t *testing.T) {
	for _, scale := range []TimeScale{UTC, TAI, TT, UT1} {
		e := Epoch{Scale: scale, SecondsPastJ2000: 0}
		_, err := e.ToTDBSeconds(nil, nil)
		require.ErrorIs(t, err, ErrTimeError, "scale %s", scale)
	}
}

func TestEpochToTDBSecondsUnknownScale(t *testing.T) {
	e := Epoch{Scale: TimeScale(42), SecondsPastJ2000: 0}
	_, err := e.ToTDBSeconds(nil, nil)
	require.ErrorIs(t, err, ErrTimeError)
}

func TestEpochToTDBSecondsTAIChain(t *testing.T) {
	lsk := mustTestLSK(t)
	e := Epoch{Scale: TAI, SecondsPastJ2000: 1000}
	got, err := e.ToTDBSeconds(lsk, nil)
	require.NoError(t, err)
	want := timescale.TTToTDB(timescale.TAIToTT(1000, lsk), lsk)
	require.Equal(t, want, got)
}

func TestCalendarDateJulianDayAndRoundTrip(t *testing.T) {
	cd := CalendarDate{Year: 2000, Month: 1, Day: 1.5}
	require.InDelta(t, 2_451_545.0, cd.JulianDay(), 1e-9)

	e := cd.ToEpoch(TDB)
	back := CalendarDateFromEpoch(e)
	require.Equal(t, cd.Year, back.Year)
	require.Equal(t, cd.Month, back.Month)
	require.InDelta(t, cd.Day, back.Day, 1e-6)
}

func mustTestLSK(t *testing.T) *timescale.LskData {
	t.Helper()
	data, err := timescale.ParseLSK(testLSK)
	require.NoError(t, err)
	return data
}
