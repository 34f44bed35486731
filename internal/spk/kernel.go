package spk

import (
	"fmt"
	"os"

	"github.com/Mr-Pental21/ctara-dhruv-core/internal/daf"
)

// SpkDataType2 is the only segment data type this reader evaluates.
const SpkDataType2 = 2

// Kernel is a loaded SPK file, parsed and ready for segment evaluation.
// It owns the file's bytes for the lifetime of the engine that loaded it.
type Kernel struct {
	Path     string
	data     []byte
	reader   *daf.Reader
	Endian   daf.Endianness
	Segments []Segment
}

// Load reads path into memory and parses its DAF file record, summary
// records, and SPK segment index.
func Load(path string) (*Kernel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spk: reading %s: %w", path, err)
	}
	k, err := FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("spk: parsing %s: %w", path, err)
	}
	k.Path = path
	return k, nil
}

// FromBytes parses an SPK kernel already resident in memory (used by
// Load, and directly by tests that construct synthetic kernels).
func FromBytes(data []byte) (*Kernel, error) {
	file, err := daf.ParseFileRecord(data)
	if err != nil {
		return nil, err
	}
	if file.ND != 2 || file.NI != 6 {
		return nil, fmt.Errorf("%w: expected SPK (ND=2, NI=6), got ND=%d, NI=%d", daf.ErrBadFileID, file.ND, file.NI)
	}

	summaries, err := daf.ReadSummaries(data, file)
	if err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(summaries))
	for _, s := range summaries {
		seg, err := FromSummary(s)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}

	return &Kernel{
		data:     data,
		reader:   daf.NewReader(data, file.Endian),
		Endian:   file.Endian,
		Segments: segments,
	}, nil
}

// FindSegment returns the segment matching target/center whose window
// covers epochTDB, applying the spec's selection rule when more than one
// candidate matches: closest midpoint to the query epoch, ties broken by
// the later start_et.
func (k *Kernel) FindSegment(target, center int32, epochTDB float64) (*Segment, error) {
	var best *Segment
	var bestDist float64

	for i := range k.Segments {
		seg := &k.Segments[i]
		if seg.Target != target || seg.Center != center || !seg.Covers(epochTDB) {
			continue
		}
		mid := (seg.StartEpoch + seg.EndEpoch) / 2
		dist := mid - epochTDB
		if dist < 0 {
			dist = -dist
		}
		if best == nil || dist < bestDist ||
			(dist == bestDist && seg.StartEpoch > best.StartEpoch) {
			best = seg
			bestDist = dist
		}
	}

	if best == nil {
		return nil, &EpochOutOfRangeError{Target: target, Center: center, EpochTDB: epochTDB}
	}
	return best, nil
}

// Evaluate evaluates the (target, center) segment covering epochTDB.
func (k *Kernel) Evaluate(target, center int32, epochTDB float64) (Evaluation, error) {
	seg, err := k.FindSegment(target, center, epochTDB)
	if err != nil {
		return Evaluation{}, err
	}

	switch seg.DataType {
	case SpkDataType2:
		return EvaluateType2(k.reader, *seg, epochTDB)
	default:
		return Evaluation{}, &UnsupportedDataTypeError{DataType: seg.DataType}
	}
}

// CenterFor looks up the center body declared by the first segment with
// the given target. Returns (0, false) if no segment names that target.
func (k *Kernel) CenterFor(target int32) (int32, bool) {
	for _, seg := range k.Segments {
		if seg.Target == target {
			return seg.Center, true
		}
	}
	return 0, false
}

// HasBody reports whether the kernel contains any segment naming body as
// a target, i.e. whether CenterFor(body) would succeed.
func (k *Kernel) HasBody(body int32) bool {
	_, ok := k.CenterFor(body)
	return ok
}
