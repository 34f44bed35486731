package timescale

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"
)

// EopRow is one Modified-Julian-Date-keyed DUT1 sample.
type EopRow struct {
	MJD  float64
	DUT1 float64 // seconds
}

// EopTable is a sorted-by-MJD set of DUT1 samples with linear
// interpolation between rows. A nil or empty table yields DUT1 = 0 for
// every lookup (spec.md: "Missing EOP file => DUT1 = 0, no error").
type EopTable struct {
	Rows []EopRow
}

// ParseEOP parses IERS finals2000A.all fixed-width text. Fields used:
// MJD (columns 8-15), DUT1 (columns 59-68), per spec.md §6.
func ParseEOP(r io.Reader) (*EopTable, error) {
	var rows []EopRow
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 68 {
			continue
		}
		mjdField := strings.TrimSpace(sliceCols(line, 7, 15))
		dut1Field := strings.TrimSpace(sliceCols(line, 58, 68))
		if mjdField == "" || dut1Field == "" {
			continue
		}
		mjd, err := strconv.ParseFloat(mjdField, 64)
		if err != nil {
			continue
		}
		dut1, err := strconv.ParseFloat(dut1Field, 64)
		if err != nil {
			continue
		}
		rows = append(rows, EopRow{MJD: mjd, DUT1: dut1})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].MJD < rows[j].MJD })
	return &EopTable{Rows: rows}, nil
}

// sliceCols returns line[start:end] in 0-based half-open column indices,
// clamped to the line's length (IERS fixed-width columns are 1-based in
// the format description; callers pass 0-based equivalents).
func sliceCols(line string, start, end int) string {
	if start > len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return line[start:end]
}

// DUT1 returns UT1-UTC at the given Modified Julian Date via linear
// interpolation between the two bracketing rows. Epochs outside the
// table's covered range fall back to zero (spec.md's documented
// boundary behavior), as does a nil/empty table.
func (t *EopTable) DUT1(mjd float64) float64 {
	if t == nil || len(t.Rows) == 0 {
		return 0
	}
	rows := t.Rows
	if mjd <= rows[0].MJD {
		if mjd == rows[0].MJD {
			return rows[0].DUT1
		}
		return 0
	}
	if mjd >= rows[len(rows)-1].MJD {
		if mjd == rows[len(rows)-1].MJD {
			return rows[len(rows)-1].DUT1
		}
		return 0
	}

	i := sort.Search(len(rows), func(i int) bool { return rows[i].MJD >= mjd })
	lo, hi := rows[i-1], rows[i]
	frac := (mjd - lo.MJD) / (hi.MJD - lo.MJD)
	return lo.DUT1 + frac*(hi.DUT1-lo.DUT1)
}
