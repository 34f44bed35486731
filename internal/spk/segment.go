// Package spk interprets DAF summaries as SPK segment descriptors and
// evaluates SPK Type 2 (Chebyshev position) segments.
//
// Reference: NAIF SPK Required Reading (public domain, US Government
// work product). Implementation is original, written from the public
// specification and grounded on original_source/crates/jpl_kernel/src/spk.rs.
package spk

import (
	"fmt"

	"github.com/Mr-Pental21/ctara-dhruv-core/internal/chebyshev"
	"github.com/Mr-Pental21/ctara-dhruv-core/internal/daf"
)

// Segment is the metadata for one SPK segment, extracted from a DAF summary.
type Segment struct {
	StartEpoch float64 // seconds past J2000 TDB
	EndEpoch   float64
	Target     int32
	Center     int32
	Frame      int32
	DataType   int32
	// StartAddr/EndAddr are 1-based word addresses (8 bytes per word).
	StartAddr int32
	EndAddr   int32
}

// FromSummary converts a DAF summary (ND=2, NI=6) into a Segment.
func FromSummary(s daf.Summary) (Segment, error) {
	if len(s.Doubles) < 2 || len(s.Ints) < 6 {
		return Segment{}, fmt.Errorf("%w: SPK summary requires ND>=2, NI>=6", ErrBadSummary)
	}
	return Segment{
		StartEpoch: s.Doubles[0],
		EndEpoch:   s.Doubles[1],
		Target:     s.Ints[0],
		Center:     s.Ints[1],
		Frame:      s.Ints[2],
		DataType:   s.Ints[3],
		StartAddr:  s.Ints[4],
		EndAddr:    s.Ints[5],
	}, nil
}

// Covers reports whether the segment's time window contains epochTDB,
// inclusive of both endpoints (spec boundary rule: queries exactly at
// start_et/end_et succeed).
func (s Segment) Covers(epochTDB float64) bool {
	return epochTDB >= s.StartEpoch && epochTDB <= s.EndEpoch
}

// Evaluation is the result of evaluating a segment at one epoch.
type Evaluation struct {
	PositionKM   [3]float64
	VelocityKMS  [3]float64
}

type type2Descriptor struct {
	init   float64
	intlen float64
	rsize  float64
	n      float64
}

// readType2Descriptor reads the trailing 4-double directory of a Type 2
// segment: the last 32 bytes ending at the segment's end address.
func readType2Descriptor(r *daf.Reader, seg Segment) (type2Descriptor, error) {
	endByte := int(seg.EndAddr) * 8
	if endByte > r.Len() || endByte < 32 {
		return type2Descriptor{}, fmt.Errorf("%w: segment end address extends past file", ErrBadSegmentData)
	}
	descOffset := endByte - 32

	init, err := r.Float64At(descOffset)
	if err != nil {
		return type2Descriptor{}, err
	}
	intlen, err := r.Float64At(descOffset + 8)
	if err != nil {
		return type2Descriptor{}, err
	}
	rsize, err := r.Float64At(descOffset + 16)
	if err != nil {
		return type2Descriptor{}, err
	}
	n, err := r.Float64At(descOffset + 24)
	if err != nil {
		return type2Descriptor{}, err
	}
	return type2Descriptor{init: init, intlen: intlen, rsize: rsize, n: n}, nil
}

// EvaluateType2 evaluates an SPK Type 2 (Chebyshev position) segment at
// epochTDB seconds past J2000, returning position in km and velocity in
// km/s in the segment's native reference frame.
func EvaluateType2(r *daf.Reader, seg Segment, epochTDB float64) (Evaluation, error) {
	desc, err := readType2Descriptor(r, seg)
	if err != nil {
		return Evaluation{}, err
	}

	n := int(desc.n)
	rsize := int(desc.rsize)
	intlen := desc.intlen

	if rsize < 3 || (rsize-2)%3 != 0 {
		return Evaluation{}, fmt.Errorf("%w: invalid RSIZE %d: must satisfy (RSIZE-2) mod 3 == 0", ErrBadSegmentData, rsize)
	}
	nCoeffs := (rsize - 2) / 3

	recordIndex := int((epochTDB - desc.init) / intlen)
	if recordIndex >= n {
		recordIndex = n - 1
	}
	if recordIndex < 0 {
		recordIndex = 0
	}

	segStartByte := (int(seg.StartAddr) - 1) * 8
	recordByte := segStartByte + recordIndex*rsize*8

	if recordByte+rsize*8 > r.Len() {
		return Evaluation{}, fmt.Errorf("%w: record extends past end of file", ErrBadSegmentData)
	}

	mid, err := r.Float64At(recordByte)
	if err != nil {
		return Evaluation{}, err
	}
	radius, err := r.Float64At(recordByte + 8)
	if err != nil {
		return Evaluation{}, err
	}
	if radius == 0 {
		return Evaluation{}, fmt.Errorf("%w: RADIUS is zero", ErrBadSegmentData)
	}

	tau := (epochTDB - mid) / radius
	coeffBase := recordByte + 16

	var eval Evaluation
	coeffs := make([]float64, nCoeffs)
	for axis := 0; axis < 3; axis++ {
		axisOffset := coeffBase + axis*nCoeffs*8
		for c := 0; c < nCoeffs; c++ {
			v, err := r.Float64At(axisOffset + c*8)
			if err != nil {
				return Evaluation{}, err
			}
			coeffs[c] = v
		}
		eval.PositionKM[axis] = chebyshev.Eval(coeffs, tau)
		eval.VelocityKMS[axis] = chebyshev.EvalDerivative(coeffs, tau) / radius
	}

	return eval, nil
}
