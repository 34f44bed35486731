package daf

import "errors"

// Sentinel errors wrapped with contextual detail by the parsing functions.
var (
	ErrFileTooSmall     = errors.New("daf: file too small")
	ErrBadFileID        = errors.New("daf: bad file ID")
	ErrBadEndianness    = errors.New("daf: bad endianness marker")
	ErrBadSummaryRecord = errors.New("daf: bad summary record")
)
