package wire

import "errors"

var (
	ErrUnexpectedEOF   = errors.New("wire: unexpected end of data")
	ErrMalformedVarInt = errors.New("wire: malformed varint")
	ErrStringTooLong   = errors.New("wire: string too long")
	ErrInvalidString   = errors.New("wire: invalid string")
	ErrInvalidBool     = errors.New("wire: invalid bool")
)
