package spk

import (
	"errors"
	"fmt"
)

var (
	ErrBadSummary     = errors.New("spk: bad summary")
	ErrBadSegmentData = errors.New("spk: bad segment data")
	ErrEpochOutOfRange = errors.New("spk: epoch out of range")
	ErrUnsupportedDataType = errors.New("spk: unsupported data type")
)

// EpochOutOfRangeError reports that no segment for (target, center) covers
// the requested epoch.
type EpochOutOfRangeError struct {
	Target, Center int32
	EpochTDB       float64
}

func (e *EpochOutOfRangeError) Error() string {
	return fmt.Sprintf("spk: epoch %g s TDB out of range for target=%d center=%d", e.EpochTDB, e.Target, e.Center)
}

func (e *EpochOutOfRangeError) Unwrap() error { return ErrEpochOutOfRange }

// UnsupportedDataTypeError reports a segment whose data type this reader
// does not implement.
type UnsupportedDataTypeError struct {
	DataType int32
}

func (e *UnsupportedDataTypeError) Error() string {
	return fmt.Sprintf("spk: unsupported SPK data type %d", e.DataType)
}

func (e *UnsupportedDataTypeError) Unwrap() error { return ErrUnsupportedDataType }
