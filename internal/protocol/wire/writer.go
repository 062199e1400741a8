package wire

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}

// Writer is an append-only write cursor. Writes never fail except for
// values the protocol cannot represent (oversized strings).
type Writer struct {
	buf     *bytes.Buffer
	scratch [binary.MaxVarintLen64]byte
}

// NewWriter returns a Writer backed by a pooled buffer. Call Release when
// the encoded bytes are no longer referenced.
func NewWriter() *Writer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return &Writer{buf: buf}
}

// Release returns the backing buffer to the pool. Bytes previously
// returned by the Writer must not be used afterwards.
func (w *Writer) Release() {
	if w.buf == nil {
		return
	}
	w.buf.Reset()
	bufferPool.Put(w.buf)
	w.buf = nil
}

// Bytes returns a view of the encoded data.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *Writer) Len() int {
	return w.buf.Len()
}

// Truncate discards everything written after the first n bytes.
func (w *Writer) Truncate(n int) {
	w.buf.Truncate(n)
}

func (w *Writer) Write(p []byte) {
	w.buf.Write(p)
}

func (w *Writer) Bool(v bool) {
	if v {
		w.buf.WriteByte(1)
		return
	}
	w.buf.WriteByte(0)
}

func (w *Writer) Uint8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *Writer) Int8(v int8) {
	w.buf.WriteByte(byte(v))
}

func (w *Writer) Uint16(v uint16) {
	w.buf.Write(binary.BigEndian.AppendUint16(w.scratch[:0], v))
}

func (w *Writer) Int16(v int16) {
	w.Uint16(uint16(v))
}

func (w *Writer) Uint32(v uint32) {
	w.buf.Write(binary.BigEndian.AppendUint32(w.scratch[:0], v))
}

func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v))
}

func (w *Writer) Uint64(v uint64) {
	w.buf.Write(binary.BigEndian.AppendUint64(w.scratch[:0], v))
}

func (w *Writer) Int64(v int64) {
	w.Uint64(uint64(v))
}

func (w *Writer) Float32(v float32) {
	w.Uint32(math.Float32bits(v))
}

func (w *Writer) Float64(v float64) {
	w.Uint64(math.Float64bits(v))
}

func (w *Writer) UUID(v uuid.UUID) {
	w.buf.Write(v[:])
}

func (w *Writer) VarInt32(v int32) {
	w.buf.Write(AppendVarInt32(w.scratch[:0], v))
}

func (w *Writer) VarInt64(v int64) {
	w.buf.Write(AppendVarInt64(w.scratch[:0], v))
}

// String writes a varint byte length followed by the UTF-8 bytes of v.
func (w *Writer) String(v string, maxLen int) error {
	if !utf8.ValidString(v) {
		return ErrInvalidString
	}
	if utf8.RuneCountInString(v) > maxLen {
		return ErrStringTooLong
	}
	w.VarInt32(int32(len(v)))
	w.buf.WriteString(v)
	return nil
}
