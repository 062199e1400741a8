package protocol

import (
	"errors"
	"fmt"

	"github.com/danmuck/mobwire/internal/observability"
	"github.com/danmuck/mobwire/internal/protocol/layout"
	"github.com/danmuck/mobwire/internal/protocol/packet"
	"github.com/danmuck/mobwire/internal/protocol/wire"
	"github.com/rs/zerolog/log"
)

// Decode stages reported to metrics.
const (
	stageUnframe = "unframe"
	stageLookup  = "lookup"
	stageBody    = "body"
)

// Unmarshal decodes one framed packet using the layouts registered in
// pool. The body must be consumed exactly. On failure no packet is
// returned.
func Unmarshal(pool packet.Pool, data []byte) (packet.Packet, error) {
	id, r, factory, err := open(pool, data)
	if err != nil {
		return nil, err
	}
	pk := factory()
	l := pk.Layout()
	if err := layout.Decode(r, l, pk); err != nil {
		return nil, decodeFailed(stageBody, id, l.Name, err)
	}
	if r.Remaining() != 0 {
		err := fmt.Errorf("%w: %d bytes after %s", ErrTrailingData, r.Remaining(), l.Name)
		return nil, decodeFailed(stageBody, id, l.Name, err)
	}
	observability.RecordDecode(l.Name, len(data))
	return pk, nil
}

// UnmarshalRecord decodes one framed packet into a layout-shaped Record
// instead of its Go type.
func UnmarshalRecord(pool packet.Pool, data []byte) (int32, *layout.Record, error) {
	id, r, factory, err := open(pool, data)
	if err != nil {
		return 0, nil, err
	}
	l := factory().Layout()
	rec, err := layout.DecodeRecord(r, l)
	if err != nil {
		return 0, nil, decodeFailed(stageBody, id, l.Name, err)
	}
	if r.Remaining() != 0 {
		err := fmt.Errorf("%w: %d bytes after %s", ErrTrailingData, r.Remaining(), l.Name)
		return 0, nil, decodeFailed(stageBody, id, l.Name, err)
	}
	observability.RecordDecode(l.Name, len(data))
	return id, rec, nil
}

func open(pool packet.Pool, data []byte) (int32, *wire.Reader, func() packet.Packet, error) {
	id, r, err := Unframe(data)
	if err != nil {
		return 0, nil, nil, decodeFailed(stageUnframe, 0, "", err)
	}
	factory, err := pool.Lookup(id)
	if err != nil {
		return 0, nil, nil, decodeFailed(stageLookup, id, "", err)
	}
	return id, r, factory, nil
}

func decodeFailed(stage string, id int32, name string, err error) error {
	reason := failureReason(err)
	observability.RecordDecodeFailure(stage, reason)
	log.Debug().
		Err(err).
		Str("stage", stage).
		Int32("type_id", id).
		Str("packet", name).
		Str("reason", reason).
		Msg("protocol.Unmarshal failed")
	return err
}

func failureReason(err error) string {
	var unknown *packet.UnknownPacketTypeError
	switch {
	case errors.Is(err, wire.ErrUnexpectedEOF):
		return "unexpected_eof"
	case errors.Is(err, wire.ErrMalformedVarInt):
		return "malformed_varint"
	case errors.As(err, &unknown):
		return "unknown_packet_type"
	case errors.Is(err, ErrTrailingData):
		return "trailing_data"
	case errors.Is(err, wire.ErrStringTooLong), errors.Is(err, wire.ErrInvalidString):
		return "invalid_string"
	case errors.Is(err, wire.ErrInvalidBool):
		return "invalid_bool"
	default:
		return "other"
	}
}
