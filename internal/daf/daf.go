// Package daf parses the NAIF DAF (Double precision Array File) binary
// container that SPK kernels are built on.
//
// Reference: NAIF DAF Required Reading (public domain, US Government
// work product). Implementation is original, written from the public
// specification and translated from the byte-order-aware reader idiom
// used throughout this module's ancestry.
package daf

import (
	"encoding/binary"
	"fmt"
	"math"
)

// RecordBytes is the fixed size of every DAF record.
const RecordBytes = 1024

var (
	ltlIEEE = [8]byte{'L', 'T', 'L', '-', 'I', 'E', 'E', 'E'}
	bigIEEE = [8]byte{'B', 'I', 'G', '-', 'I', 'E', 'E', 'E'}
)

// Endianness is the detected byte order of a DAF file.
type Endianness int

const (
	Little Endianness = iota
	Big
)

func (e Endianness) order() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Reader wraps a byte-order-aware view over a loaded DAF file's bytes.
// It never copies the underlying slice; callers own its lifetime.
type Reader struct {
	data  []byte
	order binary.ByteOrder
}

// NewReader wraps data with the given endianness for word-at-a-time reads.
func NewReader(data []byte, endian Endianness) *Reader {
	return &Reader{data: data, order: endian.order()}
}

// Len reports the number of bytes backing the reader.
func (r *Reader) Len() int { return len(r.data) }

// Float64At reads one little/big-endian IEEE-754 double at a byte offset.
func (r *Reader) Float64At(offset int) (float64, error) {
	if offset < 0 || offset+8 > len(r.data) {
		return 0, fmt.Errorf("daf: float64 read at %d out of bounds (len %d)", offset, len(r.data))
	}
	bits := r.order.Uint64(r.data[offset : offset+8])
	return math.Float64frombits(bits), nil
}

// Int32At reads one 4-byte signed integer at a byte offset.
func (r *Reader) Int32At(offset int) (int32, error) {
	if offset < 0 || offset+4 > len(r.data) {
		return 0, fmt.Errorf("daf: int32 read at %d out of bounds (len %d)", offset, len(r.data))
	}
	return int32(r.order.Uint32(r.data[offset : offset+4])), nil
}

// Slice returns the raw bytes in [start, end) without copying.
func (r *Reader) Slice(start, end int) ([]byte, error) {
	if start < 0 || end > len(r.data) || start > end {
		return nil, fmt.Errorf("daf: slice [%d:%d] out of bounds (len %d)", start, end, len(r.data))
	}
	return r.data[start:end], nil
}

// FileRecord is the parsed first 1024-byte record of a DAF file.
type FileRecord struct {
	FileID       string
	ND           int
	NI           int
	InternalName string
	Fward        int
	Bward        int
	Free         int
	Endian       Endianness
}

// SummarySize returns the number of 8-byte words per summary: ND + ceil(NI/2).
func SummarySize(nd, ni int) int {
	return nd + (ni+1)/2
}

// ParseFileRecord parses the DAF file record (bytes 0..1024 of the file).
func ParseFileRecord(data []byte) (*FileRecord, error) {
	if len(data) < RecordBytes {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrFileTooSmall, RecordBytes, len(data))
	}

	locfmt := data[88:96]
	var endian Endianness
	switch {
	case string(locfmt) == string(ltlIEEE[:]):
		endian = Little
	case string(locfmt) == string(bigIEEE[:]):
		endian = Big
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadEndianness, trimNulls(locfmt))
	}

	order := endian.order()

	fileID := trimNulls(data[0:8])
	nd := int(int32(order.Uint32(data[8:12])))
	ni := int(int32(order.Uint32(data[12:16])))
	internalName := trimNulls(data[16:76])
	fward := int(int32(order.Uint32(data[76:80])))
	bward := int(int32(order.Uint32(data[80:84])))
	free := int(int32(order.Uint32(data[84:88])))

	if len(fileID) < 4 || fileID[:4] != "DAF/" {
		return nil, fmt.Errorf("%w: %q", ErrBadFileID, fileID)
	}

	return &FileRecord{
		FileID:       fileID,
		ND:           nd,
		NI:           ni,
		InternalName: internalName,
		Fward:        fward,
		Bward:        bward,
		Free:         free,
		Endian:       endian,
	}, nil
}

// Summary holds the double- and integer-valued components of one DAF
// summary entry (one segment descriptor, before domain interpretation).
type Summary struct {
	Doubles []float64
	Ints    []int32
}

// ReadSummaries walks the summary-record linked list starting at
// file.Fward and collects every summary in file order.
func ReadSummaries(data []byte, file *FileRecord) ([]Summary, error) {
	nd, ni := file.ND, file.NI
	ss := SummarySize(nd, ni)
	order := file.Endian.order()

	var summaries []Summary
	recordNum := file.Fward

	for recordNum != 0 {
		recOffset := (recordNum - 1) * RecordBytes
		if recOffset+RecordBytes > len(data) {
			return nil, fmt.Errorf("%w: summary record %d extends past end of file", ErrBadSummaryRecord, recordNum)
		}

		nsumBits := order.Uint64(data[recOffset+16 : recOffset+24])
		nsum := int(math.Float64frombits(nsumBits))

		for i := 0; i < nsum; i++ {
			sumOffset := recOffset + 24 + i*ss*8
			if sumOffset+ss*8 > recOffset+RecordBytes {
				return nil, fmt.Errorf("%w: summary %d in record %d overflows record boundary", ErrBadSummaryRecord, i, recordNum)
			}

			doubles := make([]float64, nd)
			for d := 0; d < nd; d++ {
				bits := order.Uint64(data[sumOffset+d*8 : sumOffset+d*8+8])
				doubles[d] = math.Float64frombits(bits)
			}

			intBase := sumOffset + nd*8
			ints := make([]int32, ni)
			for j := 0; j < ni; j++ {
				ints[j] = int32(order.Uint32(data[intBase+j*4 : intBase+j*4+4]))
			}

			summaries = append(summaries, Summary{Doubles: doubles, Ints: ints})
		}

		// NEXT is stored as a double in the NAIF spec; NEXT == 0.0 ends the list.
		nextBits := order.Uint64(data[recOffset : recOffset+8])
		recordNum = int(math.Float64frombits(nextBits))
	}

	return summaries, nil
}

func trimNulls(b []byte) string {
	s := string(b)
	for len(s) > 0 && (s[len(s)-1] == 0 || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	return s
}
