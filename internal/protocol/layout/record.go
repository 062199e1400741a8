package layout

import (
	"reflect"

	"github.com/danmuck/mobwire/internal/protocol/wire"
	"github.com/google/uuid"
)

// Record is a value shaped only by its layout, used where no Go type is
// declared for a packet.
type Record struct {
	layout *Layout
	slots  []any
}

// NewRecord allocates zero slots for l. A nil layout yields an empty
// record; Struct fields without a nested layout get no slot and fail at
// bind time.
func NewRecord(l *Layout) *Record {
	if l == nil {
		l = &Layout{}
	}
	slots := make([]any, len(l.Fields))
	for i, f := range l.Fields {
		slots[i] = newSlot(f)
	}
	return &Record{layout: l, slots: slots}
}

func newSlot(f Field) any {
	switch f.Kind {
	case Bool:
		return new(bool)
	case Int8:
		return new(int8)
	case Uint8:
		return new(uint8)
	case Int16:
		return new(int16)
	case Uint16:
		return new(uint16)
	case Int32:
		return new(int32)
	case Uint32:
		return new(uint32)
	case Int64:
		return new(int64)
	case Uint64:
		return new(uint64)
	case Float32:
		return new(float32)
	case Float64:
		return new(float64)
	case UUID:
		return new(uuid.UUID)
	case String:
		return new(string)
	case Struct:
		if f.Layout == nil {
			return nil
		}
		return NewRecord(f.Layout)
	default:
		return nil
	}
}

// DecodeRecord decodes one value of l from r.
func DecodeRecord(r *wire.Reader, l *Layout) (*Record, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	rec := NewRecord(l)
	if err := Decode(r, l, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *Record) Layout() *Layout {
	return r.layout
}

func (r *Record) Fields() []any {
	return r.slots
}

// Names returns field names in layout order.
func (r *Record) Names() []string {
	names := make([]string, len(r.layout.Fields))
	for i, f := range r.layout.Fields {
		names[i] = f.Name
	}
	return names
}

// Get returns the value of the named field. Struct fields are returned as
// *Record.
func (r *Record) Get(name string) (any, bool) {
	i := r.layout.Index(name)
	if i < 0 {
		return nil, false
	}
	if rec, ok := r.slots[i].(*Record); ok {
		return rec, true
	}
	return reflect.ValueOf(r.slots[i]).Elem().Interface(), true
}

// Set assigns the named field. The value must have the field's Go type.
func (r *Record) Set(name string, v any) bool {
	i := r.layout.Index(name)
	if i < 0 {
		return false
	}
	if _, ok := r.slots[i].(*Record); ok {
		return false
	}
	dst := reflect.ValueOf(r.slots[i]).Elem()
	src := reflect.ValueOf(v)
	if !src.IsValid() || src.Type() != dst.Type() {
		return false
	}
	dst.Set(src)
	return true
}
