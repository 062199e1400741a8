package protocol

import (
	"fmt"

	"github.com/danmuck/mobwire/internal/protocol/wire"
)

// Frame prefixes body with the varint packet type id. The id is not
// checked against any registry.
func Frame(typeID int32, body []byte) []byte {
	out := make([]byte, 0, wire.VarInt32Size(typeID)+len(body))
	out = wire.AppendVarInt32(out, typeID)
	return append(out, body...)
}

// Unframe reads the packet type id and returns a cursor positioned at the
// first body byte. A failure here makes the whole frame unreadable.
func Unframe(data []byte) (int32, *wire.Reader, error) {
	r := wire.NewReader(data)
	id, err := r.VarInt32()
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrUnreadableFrame, err)
	}
	return id, r, nil
}
