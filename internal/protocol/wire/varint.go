package wire

import "encoding/binary"

// Maximum encoded lengths of a varint for each declared width.
const (
	MaxVarInt32Len = 5
	MaxVarInt64Len = 10
)

// AppendVarInt32 appends the varint encoding of v to dst. Negative values
// are written as their 32-bit two's-complement pattern and always take
// MaxVarInt32Len bytes.
func AppendVarInt32(dst []byte, v int32) []byte {
	return binary.AppendUvarint(dst, uint64(uint32(v)))
}

// AppendVarInt64 appends the varint encoding of v to dst.
func AppendVarInt64(dst []byte, v int64) []byte {
	return binary.AppendUvarint(dst, uint64(v))
}

// VarInt32Size returns the number of bytes AppendVarInt32 writes for v.
func VarInt32Size(v int32) int {
	return uvarintSize(uint64(uint32(v)))
}

// VarInt64Size returns the number of bytes AppendVarInt64 writes for v.
func VarInt64Size(v int64) int {
	return uvarintSize(uint64(v))
}

func uvarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// VarInt32 reads a varint bounded to 32 bits.
func (r *Reader) VarInt32() (int32, error) {
	v, err := r.uvarint(MaxVarInt32Len)
	if err != nil {
		return 0, err
	}
	return int32(uint32(v)), nil
}

// VarInt64 reads a varint bounded to 64 bits.
func (r *Reader) VarInt64() (int64, error) {
	v, err := r.uvarint(MaxVarInt64Len)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// uvarint accumulates 7-bit groups until a byte without the continuation
// bit. The cursor is left untouched on failure.
func (r *Reader) uvarint(maxLen int) (uint64, error) {
	var v uint64
	start := r.off
	for i := 0; i < maxLen; i++ {
		if r.off >= len(r.buf) {
			r.off = start
			return 0, ErrUnexpectedEOF
		}
		b := r.buf[r.off]
		r.off++
		v |= uint64(b&0x7f) << (7 * uint(i))
		if b&0x80 == 0 {
			return v, nil
		}
	}
	r.off = start
	return 0, ErrMalformedVarInt
}
