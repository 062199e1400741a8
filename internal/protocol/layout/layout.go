package layout

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLayout = errors.New("layout: invalid layout")

// Field declares one entry of a packet shape.
type Field struct {
	Name     string
	Kind     Kind
	Encoding Encoding
	// MaxLen bounds String fields, in characters.
	MaxLen int
	// Layout describes Struct fields.
	Layout *Layout
}

// Layout is the ordered field list of one packet shape. Order is part of
// the wire contract.
type Layout struct {
	Name   string
	Fields []Field
}

func Fixed(name string, kind Kind) Field {
	return Field{Name: name, Kind: kind, Encoding: EncodingFixed}
}

func Var(name string, kind Kind) Field {
	return Field{Name: name, Kind: kind, Encoding: EncodingVariable}
}

func Str(name string, maxLen int) Field {
	return Field{Name: name, Kind: String, MaxLen: maxLen}
}

func Nested(name string, l *Layout) Field {
	return Field{Name: name, Kind: Struct, Layout: l}
}

// New builds and validates a layout.
func New(name string, fields ...Field) (*Layout, error) {
	l := &Layout{Name: name, Fields: fields}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Must panics on an invalid layout. Layouts are package-level declarations,
// so a failure here is a programming error caught at init.
func Must(l *Layout, err error) *Layout {
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Layout) Validate() error {
	if l == nil {
		return fmt.Errorf("%w: nil layout", ErrInvalidLayout)
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidLayout)
	}
	seen := make(map[string]struct{}, len(l.Fields))
	for i, f := range l.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("%w: %s: field %d missing name", ErrInvalidLayout, l.Name, i)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("%w: %s: duplicate field %q", ErrInvalidLayout, l.Name, f.Name)
		}
		seen[f.Name] = struct{}{}
		if _, ok := kindNames[f.Kind]; !ok {
			return fmt.Errorf("%w: %s.%s: unknown kind %d", ErrInvalidLayout, l.Name, f.Name, f.Kind)
		}
		switch f.Encoding {
		case EncodingFixed:
		case EncodingVariable:
			if f.Kind != Int32 && f.Kind != Int64 {
				return fmt.Errorf("%w: %s.%s: %s cannot be variable-length", ErrInvalidLayout, l.Name, f.Name, f.Kind)
			}
		default:
			return fmt.Errorf("%w: %s.%s: unknown encoding %d", ErrInvalidLayout, l.Name, f.Name, f.Encoding)
		}
		if f.Kind == String && f.MaxLen <= 0 {
			return fmt.Errorf("%w: %s.%s: string without max length", ErrInvalidLayout, l.Name, f.Name)
		}
		if f.Kind == Struct {
			if f.Layout == nil {
				return fmt.Errorf("%w: %s.%s: struct without layout", ErrInvalidLayout, l.Name, f.Name)
			}
			if err := f.Layout.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Index returns the position of the named field, or -1.
func (l *Layout) Index(name string) int {
	for i, f := range l.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// FixedSize reports the encoded body size when every field has a fixed
// width.
func (l *Layout) FixedSize() (int, bool) {
	total := 0
	for _, f := range l.Fields {
		if f.Kind == Struct {
			n, ok := f.Layout.FixedSize()
			if !ok {
				return 0, false
			}
			total += n
			continue
		}
		if f.Encoding == EncodingVariable || f.Kind.size() == 0 {
			return 0, false
		}
		total += f.Kind.size()
	}
	return total, true
}

func (f Field) String() string {
	switch {
	case f.Kind == Struct:
		return fmt.Sprintf("%s:%s", f.Name, f.Layout)
	case f.Kind == String:
		return fmt.Sprintf("%s:string(%d)", f.Name, f.MaxLen)
	case f.Encoding == EncodingVariable:
		return fmt.Sprintf("%s:%s/var", f.Name, f.Kind)
	default:
		return fmt.Sprintf("%s:%s", f.Name, f.Kind)
	}
}

func (l *Layout) String() string {
	parts := make([]string, 0, len(l.Fields))
	for _, f := range l.Fields {
		parts = append(parts, f.String())
	}
	return l.Name + "{" + strings.Join(parts, " ") + "}"
}
