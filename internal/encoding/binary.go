package encoding

import (
	"encoding/binary"
	"fmt"
)

const (
	// RecordSize is the encoded size of a single Record in bytes
	RecordSize = 6

	headerSize = 8
	version    = 1
)

var magic = []byte("CGRD")

// Record is one occupied cell of a compact city snapshot.
// Tag says what kind of thing is in the cell & Value is tag specific.
type Record struct {
	X     int16
	Z     int16
	Tag   uint8
	Value uint8
}

// FromBytes16 turns []byte into uint16
func FromBytes16(data []byte) uint16 {
	return binary.BigEndian.Uint16(data)
}

// FromBytes8 turns a []byte into a uint8.
func FromBytes8(data []byte) uint8 {
	if len(data) == 0 {
		return 0
	}
	return data[len(data)-1]
}

// ToBytes8 turns uint8 into []byte of len 1 (eg. 8 bits)
func ToBytes8(in uint8) []byte {
	return []byte{in}
}

// Split16 uint16 to two uint8
func Split16(in uint16) (uint8, uint8) {
	return uint8(in >> 8), uint8(in)
}

// Merge8 two uint8 to uint16
func Merge8(a, b uint8) uint16 {
	return (uint16(a) << 8) + uint16(b)
}

// PutRecord writes r into buf, which must be at least RecordSize long
func PutRecord(buf []byte, r Record) {
	binary.BigEndian.PutUint16(buf[0:2], uint16(r.X))
	binary.BigEndian.PutUint16(buf[2:4], uint16(r.Z))
	binary.BigEndian.PutUint16(buf[4:6], Merge8(r.Tag, r.Value))
}

// ReadRecord reads a Record from the first RecordSize bytes of buf
func ReadRecord(buf []byte) Record {
	tag, value := Split16(FromBytes16(buf[4:6]))
	return Record{
		X:     int16(FromBytes16(buf[0:2])),
		Z:     int16(FromBytes16(buf[2:4])),
		Tag:   tag,
		Value: value,
	}
}

// EncodeRecords returns a header followed by every record
func EncodeRecords(in []Record) []byte {
	out := make([]byte, headerSize+len(in)*RecordSize)
	copy(out, magic)
	out[4] = version
	// out[5] reserved
	binary.BigEndian.PutUint16(out[6:8], uint16(len(in)))

	for i, r := range in {
		PutRecord(out[headerSize+i*RecordSize:], r)
	}
	return out
}

// DecodeRecords is the inversion of EncodeRecords
func DecodeRecords(data []byte) ([]Record, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("snapshot too short: %d bytes", len(data))
	}
	if string(data[0:4]) != string(magic) {
		return nil, fmt.Errorf("snapshot has bad magic %q", data[0:4])
	}
	if data[4] != version {
		return nil, fmt.Errorf("unsupported snapshot version %d", data[4])
	}

	count := int(binary.BigEndian.Uint16(data[6:8]))
	if len(data) != headerSize+count*RecordSize {
		return nil, fmt.Errorf("snapshot claims %d records but has %d bytes", count, len(data))
	}

	out := make([]Record, count)
	for i := range out {
		out[i] = ReadRecord(data[headerSize+i*RecordSize:])
	}
	return out, nil
}
