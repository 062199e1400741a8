package layout

import "fmt"

// Kind is the semantic type of a field.
type Kind uint8

const (
	Bool Kind = iota + 1
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	UUID
	String
	Struct
)

var kindNames = map[Kind]string{
	Bool:    "bool",
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int64:   "int64",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	UUID:    "uuid",
	String:  "string",
	Struct:  "struct",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// size returns the encoded width of a fixed-width kind, or 0 when the
// width depends on the value.
func (k Kind) size() int {
	switch k {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	case UUID:
		return 16
	default:
		return 0
	}
}

// Encoding selects the codec path of a field. It is fixed when the layout
// is declared and never chosen at runtime.
type Encoding uint8

const (
	EncodingFixed Encoding = iota
	EncodingVariable
)

func (e Encoding) String() string {
	switch e {
	case EncodingFixed:
		return "fixed"
	case EncodingVariable:
		return "var"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}
