package protocol

import (
	"github.com/danmuck/mobwire/internal/observability"
	"github.com/danmuck/mobwire/internal/protocol/layout"
	"github.com/danmuck/mobwire/internal/protocol/packet"
	"github.com/rs/zerolog/log"
)

// Marshal encodes pk as a framed packet: type id followed by its fields.
func Marshal(pk packet.Packet) ([]byte, error) {
	if layout.IsNil(pk) {
		return nil, ErrNilPacket
	}
	l := pk.Layout()
	body, err := layout.Marshal(l, pk)
	if err != nil {
		log.Debug().Err(err).Str("packet", l.Name).Msg("protocol.Marshal failed")
		return nil, err
	}
	out := Frame(pk.ID(), body)
	observability.RecordEncode(l.Name, len(out))
	return out, nil
}
