package layout

import (
	"fmt"
	"reflect"

	"github.com/danmuck/mobwire/internal/protocol/wire"
	"github.com/google/uuid"
)

// Binder exposes pointers to a value's fields in layout order.
type Binder interface {
	Fields() []any
}

// Encode writes v field by field in declaration order. l is validated
// first. On failure w is truncated back to its length on entry, so no
// partial body is left behind.
func Encode(w *wire.Writer, l *Layout, v Binder) error {
	if err := l.Validate(); err != nil {
		return err
	}
	start := w.Len()
	if err := encode(w, l, v); err != nil {
		w.Truncate(start)
		return err
	}
	return nil
}

// Decode fills v from r in declaration order. The first failing field
// aborts the decode; v must then be discarded.
func Decode(r *wire.Reader, l *Layout, v Binder) error {
	if err := l.Validate(); err != nil {
		return err
	}
	return decode(r, l, v)
}

func encode(w *wire.Writer, l *Layout, v Binder) error {
	slots, err := bind(l, v)
	if err != nil {
		return err
	}
	for i, f := range l.Fields {
		if err := encodeField(w, f, slots[i]); err != nil {
			return wrapField(l, f, err)
		}
	}
	return nil
}

func decode(r *wire.Reader, l *Layout, v Binder) error {
	slots, err := bind(l, v)
	if err != nil {
		return err
	}
	for i, f := range l.Fields {
		if err := decodeField(r, f, slots[i]); err != nil {
			return wrapField(l, f, err)
		}
	}
	return nil
}

// Marshal encodes v into a fresh byte slice.
func Marshal(l *Layout, v Binder) ([]byte, error) {
	w := wire.NewWriter()
	defer w.Release()
	if err := Encode(w, l, v); err != nil {
		return nil, err
	}
	return append([]byte(nil), w.Bytes()...), nil
}

// Unmarshal decodes data into v and requires every byte to be consumed.
func Unmarshal(l *Layout, data []byte, v Binder) error {
	r := wire.NewReader(data)
	if err := Decode(r, l, v); err != nil {
		return err
	}
	if r.Remaining() != 0 {
		return fmt.Errorf("%w: %d bytes after %s", ErrTrailingData, r.Remaining(), l.Name)
	}
	return nil
}

// IsNil reports whether v is nil or a nil pointer behind a non-nil
// interface.
func IsNil(v Binder) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func bind(l *Layout, v Binder) ([]any, error) {
	if IsNil(v) {
		return nil, fmt.Errorf("%w: %s: nil value", ErrBindingMismatch, l.Name)
	}
	slots := v.Fields()
	if len(slots) != len(l.Fields) {
		return nil, fmt.Errorf("%w: %s: %d slots for %d fields", ErrBindingMismatch, l.Name, len(slots), len(l.Fields))
	}
	return slots, nil
}

func mismatch(f Field, slot any) error {
	return fmt.Errorf("%w: %s wants %s, got %T", ErrBindingMismatch, f.Name, f.Kind, slot)
}

func encodeField(w *wire.Writer, f Field, slot any) error {
	switch f.Kind {
	case Bool:
		p, ok := slot.(*bool)
		if !ok {
			return mismatch(f, slot)
		}
		w.Bool(*p)
	case Int8:
		p, ok := slot.(*int8)
		if !ok {
			return mismatch(f, slot)
		}
		w.Int8(*p)
	case Uint8:
		p, ok := slot.(*uint8)
		if !ok {
			return mismatch(f, slot)
		}
		w.Uint8(*p)
	case Int16:
		p, ok := slot.(*int16)
		if !ok {
			return mismatch(f, slot)
		}
		w.Int16(*p)
	case Uint16:
		p, ok := slot.(*uint16)
		if !ok {
			return mismatch(f, slot)
		}
		w.Uint16(*p)
	case Int32:
		p, ok := slot.(*int32)
		if !ok {
			return mismatch(f, slot)
		}
		if f.Encoding == EncodingVariable {
			w.VarInt32(*p)
		} else {
			w.Int32(*p)
		}
	case Uint32:
		p, ok := slot.(*uint32)
		if !ok {
			return mismatch(f, slot)
		}
		w.Uint32(*p)
	case Int64:
		p, ok := slot.(*int64)
		if !ok {
			return mismatch(f, slot)
		}
		if f.Encoding == EncodingVariable {
			w.VarInt64(*p)
		} else {
			w.Int64(*p)
		}
	case Uint64:
		p, ok := slot.(*uint64)
		if !ok {
			return mismatch(f, slot)
		}
		w.Uint64(*p)
	case Float32:
		p, ok := slot.(*float32)
		if !ok {
			return mismatch(f, slot)
		}
		w.Float32(*p)
	case Float64:
		p, ok := slot.(*float64)
		if !ok {
			return mismatch(f, slot)
		}
		w.Float64(*p)
	case UUID:
		p, ok := slot.(*uuid.UUID)
		if !ok {
			return mismatch(f, slot)
		}
		w.UUID(*p)
	case String:
		p, ok := slot.(*string)
		if !ok {
			return mismatch(f, slot)
		}
		return w.String(*p, f.MaxLen)
	case Struct:
		b, ok := slot.(Binder)
		if !ok {
			return mismatch(f, slot)
		}
		return encode(w, f.Layout, b)
	default:
		return mismatch(f, slot)
	}
	return nil
}

func decodeField(r *wire.Reader, f Field, slot any) (err error) {
	switch f.Kind {
	case Bool:
		p, ok := slot.(*bool)
		if !ok {
			return mismatch(f, slot)
		}
		*p, err = r.Bool()
	case Int8:
		p, ok := slot.(*int8)
		if !ok {
			return mismatch(f, slot)
		}
		*p, err = r.Int8()
	case Uint8:
		p, ok := slot.(*uint8)
		if !ok {
			return mismatch(f, slot)
		}
		*p, err = r.Uint8()
	case Int16:
		p, ok := slot.(*int16)
		if !ok {
			return mismatch(f, slot)
		}
		*p, err = r.Int16()
	case Uint16:
		p, ok := slot.(*uint16)
		if !ok {
			return mismatch(f, slot)
		}
		*p, err = r.Uint16()
	case Int32:
		p, ok := slot.(*int32)
		if !ok {
			return mismatch(f, slot)
		}
		if f.Encoding == EncodingVariable {
			*p, err = r.VarInt32()
		} else {
			*p, err = r.Int32()
		}
	case Uint32:
		p, ok := slot.(*uint32)
		if !ok {
			return mismatch(f, slot)
		}
		*p, err = r.Uint32()
	case Int64:
		p, ok := slot.(*int64)
		if !ok {
			return mismatch(f, slot)
		}
		if f.Encoding == EncodingVariable {
			*p, err = r.VarInt64()
		} else {
			*p, err = r.Int64()
		}
	case Uint64:
		p, ok := slot.(*uint64)
		if !ok {
			return mismatch(f, slot)
		}
		*p, err = r.Uint64()
	case Float32:
		p, ok := slot.(*float32)
		if !ok {
			return mismatch(f, slot)
		}
		*p, err = r.Float32()
	case Float64:
		p, ok := slot.(*float64)
		if !ok {
			return mismatch(f, slot)
		}
		*p, err = r.Float64()
	case UUID:
		p, ok := slot.(*uuid.UUID)
		if !ok {
			return mismatch(f, slot)
		}
		*p, err = r.UUID()
	case String:
		p, ok := slot.(*string)
		if !ok {
			return mismatch(f, slot)
		}
		*p, err = r.String(f.MaxLen)
	case Struct:
		b, ok := slot.(Binder)
		if !ok {
			return mismatch(f, slot)
		}
		return decode(r, f.Layout, b)
	default:
		return mismatch(f, slot)
	}
	return err
}
