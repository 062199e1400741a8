package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Reader is a read cursor over an already-available byte region.
// A Reader is owned by one decode operation at a time.
type Reader struct {
	buf []byte
	off int
}

func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Unread returns the unread remainder without copying.
func (r *Reader) Unread() []byte {
	return r.buf[r.off:]
}

func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) ReadByte() (byte, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Read returns a copy of the next n bytes.
func (r *Reader) Read(n int) ([]byte, error) {
	b, err := r.next(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func (r *Reader) Bool() (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		r.off--
		return false, ErrInvalidBool
	}
}

func (r *Reader) Uint8() (uint8, error) {
	return r.ReadByte()
}

func (r *Reader) Int8() (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func (r *Reader) Uint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

func (r *Reader) Uint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

func (r *Reader) Uint64() (uint64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *Reader) Int64() (int64, error) {
	v, err := r.Uint64()
	return int64(v), err
}

func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	return math.Float32frombits(v), err
}

func (r *Reader) Float64() (float64, error) {
	v, err := r.Uint64()
	return math.Float64frombits(v), err
}

// UUID reads two big-endian 64-bit halves, most significant first.
func (r *Reader) UUID() (uuid.UUID, error) {
	var id uuid.UUID
	b, err := r.next(len(id))
	if err != nil {
		return uuid.Nil, err
	}
	copy(id[:], b)
	return id, nil
}

// String reads a varint byte length followed by UTF-8 data holding at most
// maxLen characters.
func (r *Reader) String(maxLen int) (string, error) {
	start := r.off
	n, err := r.VarInt32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		r.off = start
		return "", ErrInvalidString
	}
	if int64(n) > int64(maxLen)*utf8.UTFMax {
		r.off = start
		return "", ErrStringTooLong
	}
	b, err := r.next(int(n))
	if err != nil {
		r.off = start
		return "", err
	}
	if !utf8.Valid(b) {
		r.off = start
		return "", ErrInvalidString
	}
	if utf8.RuneCount(b) > maxLen {
		r.off = start
		return "", ErrStringTooLong
	}
	return string(b), nil
}
