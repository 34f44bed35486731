package ephcore

import (
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mr-Pental21/ctara-dhruv-core/internal/frames"
)

// synthSegment describes one SPK Type 2 segment for buildSyntheticSPK:
// constant position plus a linear velocity term over [0, windowSeconds].
type synthSegment struct {
	target, center int32
	pos, vel       [3]float64
}

// buildSyntheticSPK writes a minimal, valid SPK file to dir and returns
// its path. Each segment covers [0, windowSeconds] with one Chebyshev
// record: X(tau) = pos[i] + vel[i]*radius*tau, so the analytic velocity
// at every tau is exactly vel[i].
func buildSyntheticSPK(t *testing.T, dir string, windowSeconds float64, segs []synthSegment) string {
	t.Helper()
	order := binary.LittleEndian

	file := make([]byte, 1024)
	copy(file[0:8], "DAF/SPK ")
	order.PutUint32(file[8:12], 2)
	order.PutUint32(file[12:16], 6)
	order.PutUint32(file[76:80], 2)
	order.PutUint32(file[80:84], 2)
	copy(file[88:96], []byte("LTL-IEEE"))

	summary := make([]byte, 1024)
	order.PutUint64(summary[0:8], 0)
	order.PutUint64(summary[16:24], math.Float64bits(float64(len(segs))))

	const ss = 5
	var dataBlocks [][]byte
	wordCursor := int32(257)
	radius := windowSeconds / 2
	mid := windowSeconds / 2

	for i, s := range segs {
		sumOffset := 24 + i*ss*8
		order.PutUint64(summary[sumOffset:sumOffset+8], math.Float64bits(0))
		order.PutUint64(summary[sumOffset+8:sumOffset+16], math.Float64bits(windowSeconds))
		intBase := sumOffset + 16
		order.PutUint32(summary[intBase:intBase+4], uint32(s.target))
		order.PutUint32(summary[intBase+4:intBase+8], uint32(s.center))
		order.PutUint32(summary[intBase+8:intBase+12], uint32(1))
		order.PutUint32(summary[intBase+12:intBase+16], uint32(2))

		startAddr := wordCursor
		endAddr := startAddr + 12 - 1
		order.PutUint32(summary[intBase+16:intBase+20], uint32(startAddr))
		order.PutUint32(summary[intBase+20:intBase+24], uint32(endAddr))
		wordCursor = endAddr + 1

		data := make([]byte, 96)
		putF := func(off int, v float64) { order.PutUint64(data[off:off+8], math.Float64bits(v)) }
		putF(0, mid)
		putF(8, radius)
		for axis := 0; axis < 3; axis++ {
			putF(16+axis*16, s.pos[axis])
			putF(16+axis*16+8, s.vel[axis]*radius)
		}
		putF(64, 0)
		putF(72, windowSeconds)
		putF(80, 8)
		putF(88, 1)
		dataBlocks = append(dataBlocks, data)
	}

	out := make([]byte, 0, 1024+1024+96*len(segs))
	out = append(out, file...)
	out = append(out, summary...)
	for _, d := range dataBlocks {
		out = append(out, d...)
	}

	path := filepath.Join(dir, "synthetic.bsp")
	require.NoError(t, writeFile(path, out))
	return path
}

const testLSK = `
KPL/LSK
\begindata
DELTET/DELTA_T_A = 32.184
DELTET/K = 1.657D-3
DELTET/EB = 1.671D-2
DELTET/M = ( 6.239996 1.99096871D-7 )
DELTET/DELTA_AT = ( 10, @1972-JAN-1, 37, @2017-JAN-1 )
\begintext
`

func buildTestLSK(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "naif.tls")
	require.NoError(t, writeFile(path, []byte(testLSK)))
	return path
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func newTestEngine(t *testing.T, segs []synthSegment) *Engine {
	t.Helper()
	dir := t.TempDir()
	kernelPath := buildSyntheticSPK(t, dir, 1000, segs)
	lskPath := buildTestLSK(t, dir)

	eng, err := NewEngine(EngineConfig{
		KernelPaths: []string{kernelPath},
		LskPath:     lskPath,
	})
	require.NoError(t, err)
	return eng
}

func TestQueryReferentialTransparency(t *testing.T) {
	eng := newTestEngine(t, []synthSegment{
		{target: int32(Earth), center: int32(SSB), pos: [3]float64{1, 2, 3}, vel: [3]float64{0.1, 0, 0}},
	})
	q := Query{Target: Earth, Observer: SSB, Frame: IcrfJ2000, Epoch: Epoch{Scale: TDB, SecondsPastJ2000: 500}}

	a, err := eng.Query(q)
	require.NoError(t, err)
	b, err := eng.Query(q)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestQueryAdditivityOfChains(t *testing.T) {
	eng := newTestEngine(t, []synthSegment{
		{target: int32(Earth), center: int32(SSB), pos: [3]float64{1000, 0, 0}},
		{target: int32(Moon), center: int32(SSB), pos: [3]float64{1400, 0, 0}},
		{target: int32(Mars), center: int32(SSB), pos: [3]float64{2000, 500, 0}},
	})
	epoch := Epoch{Scale: TDB, SecondsPastJ2000: 500}

	ab, err := eng.Query(Query{Target: Earth, Observer: Moon, Frame: IcrfJ2000, Epoch: epoch})
	require.NoError(t, err)
	bc, err := eng.Query(Query{Target: Moon, Observer: Mars, Frame: IcrfJ2000, Epoch: epoch})
	require.NoError(t, err)
	ac, err := eng.Query(Query{Target: Earth, Observer: Mars, Frame: IcrfJ2000, Epoch: epoch})
	require.NoError(t, err)

	sum := ab.Add(bc)
	for i := 0; i < 3; i++ {
		require.InDelta(t, ac.PositionKM[i], sum.PositionKM[i], 1e-9)
	}
}

func TestQueryObserverSymmetry(t *testing.T) {
	eng := newTestEngine(t, []synthSegment{
		{target: int32(Earth), center: int32(SSB), pos: [3]float64{1000, 200, -50}},
		{target: int32(Moon), center: int32(SSB), pos: [3]float64{1400, -300, 10}},
	})
	epoch := Epoch{Scale: TDB, SecondsPastJ2000: 500}

	ab, err := eng.Query(Query{Target: Earth, Observer: Moon, Frame: IcrfJ2000, Epoch: epoch})
	require.NoError(t, err)
	ba, err := eng.Query(Query{Target: Moon, Observer: Earth, Frame: IcrfJ2000, Epoch: epoch})
	require.NoError(t, err)

	neg := ba.Negate()
	for i := 0; i < 3; i++ {
		require.InDelta(t, ab.PositionKM[i], neg.PositionKM[i], 1e-12)
	}
}

func TestQueryEpochOutOfRange(t *testing.T) {
	eng := newTestEngine(t, []synthSegment{
		{target: int32(Earth), center: int32(SSB), pos: [3]float64{1, 2, 3}},
	})
	_, err := eng.Query(Query{Target: Earth, Observer: SSB, Frame: IcrfJ2000, Epoch: Epoch{Scale: TDB, SecondsPastJ2000: 1000.001}})
	require.True(t, errors.Is(err, ErrEpochOutOfRange))
}

func TestQueryBoundaryEpochsSucceed(t *testing.T) {
	eng := newTestEngine(t, []synthSegment{
		{target: int32(Earth), center: int32(SSB), pos: [3]float64{1, 2, 3}},
	})
	for _, tdb := range []float64{0, 1000} {
		_, err := eng.Query(Query{Target: Earth, Observer: SSB, Frame: IcrfJ2000, Epoch: Epoch{Scale: TDB, SecondsPastJ2000: tdb}})
		require.NoError(t, err)
	}
}

func TestQueryNoSegment(t *testing.T) {
	eng := newTestEngine(t, []synthSegment{
		{target: int32(Earth), center: int32(SSB), pos: [3]float64{1, 2, 3}},
	})
	_, err := eng.Query(Query{Target: Jupiter, Observer: SSB, Frame: IcrfJ2000, Epoch: Epoch{Scale: TDB, SecondsPastJ2000: 500}})
	require.True(t, errors.Is(err, ErrNoSegment))
}

func TestQueryEclipticFrameRoundTrip(t *testing.T) {
	eng := newTestEngine(t, []synthSegment{
		{target: int32(Earth), center: int32(SSB), pos: [3]float64{1000, 200, -50}},
	})
	epoch := Epoch{Scale: TDB, SecondsPastJ2000: 500}
	icrf, err := eng.Query(Query{Target: Earth, Observer: SSB, Frame: IcrfJ2000, Epoch: epoch})
	require.NoError(t, err)
	ecl, err := eng.Query(Query{Target: Earth, Observer: SSB, Frame: EclipticJ2000, Epoch: epoch})
	require.NoError(t, err)
	require.Equal(t, EclipticJ2000, ecl.Frame)
	require.NotEqual(t, icrf.PositionKM, ecl.PositionKM)

	back := frames.EclipticToIcrf(ecl.PositionKM)
	for i := 0; i < 3; i++ {
		require.InDelta(t, icrf.PositionKM[i], back[i], 1e-9)
	}
}

func TestQueryBatchPreservesOrderAndIsolatesErrors(t *testing.T) {
	eng := newTestEngine(t, []synthSegment{
		{target: int32(Earth), center: int32(SSB), pos: [3]float64{1, 2, 3}},
	})
	epoch := Epoch{Scale: TDB, SecondsPastJ2000: 500}
	qs := []Query{
		{Target: Earth, Observer: SSB, Frame: IcrfJ2000, Epoch: epoch},
		{Target: Jupiter, Observer: SSB, Frame: IcrfJ2000, Epoch: epoch}, // errors
		{Target: Earth, Observer: SSB, Frame: IcrfJ2000, Epoch: epoch},
	}
	results := eng.QueryBatch(qs)
	require.Len(t, results, 3)
	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	require.NoError(t, results[2].Err)
	require.Equal(t, results[0].Value, results[2].Value)
}

func TestQueryBatchConcurrentDeterminism(t *testing.T) {
	eng := newTestEngine(t, []synthSegment{
		{target: int32(Earth), center: int32(SSB), pos: [3]float64{1, 2, 3}, vel: [3]float64{0.01, 0, 0}},
		{target: int32(Moon), center: int32(SSB), pos: [3]float64{4, -1, 7}},
	})
	epoch := Epoch{Scale: TDB, SecondsPastJ2000: 321}
	qs := []Query{
		{Target: Earth, Observer: SSB, Frame: IcrfJ2000, Epoch: epoch},
		{Target: Moon, Observer: Earth, Frame: IcrfJ2000, Epoch: epoch},
		{Target: Earth, Observer: Moon, Frame: EclipticOfDate, Epoch: epoch},
	}

	const n = 8
	all := make([][]Result, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			all[i] = eng.QueryBatch(qs)
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		for j := range qs {
			require.NoError(t, all[i][j].Err)
			require.Equal(t, all[0][j].Value, all[i][j].Value)
		}
	}
}

func TestEngineConfigValidate(t *testing.T) {
	_, err := NewEngine(EngineConfig{})
	require.True(t, errors.Is(err, ErrConfigError))
}

func TestComputeFingerprintIsStable(t *testing.T) {
	k1 := computeFingerprint(Earth, SSB, IcrfJ2000, frames.DefaultPrecessionModel, 12345)
	k2 := computeFingerprint(Earth, SSB, IcrfJ2000, frames.DefaultPrecessionModel, 12345)
	require.Equal(t, k1, k2)

	k3 := computeFingerprint(Moon, SSB, IcrfJ2000, frames.DefaultPrecessionModel, 12345)
	require.NotEqual(t, k1, k3)
}
