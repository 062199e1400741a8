package transport

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/mobwire/internal/protocol/wire"
)

var (
	ErrFrameTooLarge   = errors.New("transport: frame too large")
	ErrShortFrame      = errors.New("transport: short frame")
	ErrMalformedLength = errors.New("transport: malformed frame length")
)

// Reader reads length-prefixed frames from a byte source.
type Reader struct {
	r      *bufio.Reader
	limits Limits
}

func NewReader(r io.Reader, limits Limits) *Reader {
	return &Reader{r: bufio.NewReader(r), limits: limits}
}

// ReadFrame returns the next frame payload. io.EOF is returned only when
// the source ends cleanly between frames.
func (r *Reader) ReadFrame() ([]byte, error) {
	n, err := r.readLength()
	if err != nil {
		return nil, err
	}
	if n > r.limits.MaxFrameBytes {
		return nil, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, n, r.limits.MaxFrameBytes)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r.r, payload); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, ErrShortFrame
		}
		return nil, err
	}
	return payload, nil
}

func (r *Reader) readLength() (int, error) {
	var v uint32
	for i := 0; i < wire.MaxVarInt32Len; i++ {
		b, err := r.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if i == 0 {
					return 0, io.EOF
				}
				return 0, ErrShortFrame
			}
			return 0, err
		}
		v |= uint32(b&0x7f) << (7 * uint(i))
		if b&0x80 == 0 {
			if int32(v) < 0 {
				return 0, ErrMalformedLength
			}
			return int(v), nil
		}
	}
	return 0, ErrMalformedLength
}

// Writer writes length-prefixed frames to a byte sink.
type Writer struct {
	w      io.Writer
	limits Limits
}

func NewWriter(w io.Writer, limits Limits) *Writer {
	return &Writer{w: w, limits: limits}
}

// WriteFrame writes the length prefix and payload in a single Write.
func (w *Writer) WriteFrame(payload []byte) error {
	if len(payload) > w.limits.MaxFrameBytes {
		return fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, len(payload), w.limits.MaxFrameBytes)
	}
	buf := make([]byte, 0, wire.VarInt32Size(int32(len(payload)))+len(payload))
	buf = wire.AppendVarInt32(buf, int32(len(payload)))
	buf = append(buf, payload...)
	_, err := w.w.Write(buf)
	return err
}
