package packet

import "github.com/danmuck/mobwire/internal/protocol/layout"

// ClientboundKeepAlive must be answered with a ServerboundKeepAlive carrying
// the same id.
type ClientboundKeepAlive struct {
	KeepAliveID int64
}

var clientboundKeepAliveLayout = layout.Must(layout.New("clientbound_keep_alive",
	layout.Fixed("id", layout.Int64),
))

func (*ClientboundKeepAlive) ID() int32 {
	return IDClientboundKeepAlive
}

func (*ClientboundKeepAlive) Layout() *layout.Layout {
	return clientboundKeepAliveLayout
}

func (pk *ClientboundKeepAlive) Fields() []any {
	return []any{&pk.KeepAliveID}
}

type ServerboundKeepAlive struct {
	KeepAliveID int64
}

var serverboundKeepAliveLayout = layout.Must(layout.New("serverbound_keep_alive",
	layout.Fixed("id", layout.Int64),
))

func (*ServerboundKeepAlive) ID() int32 {
	return IDServerboundKeepAlive
}

func (*ServerboundKeepAlive) Layout() *layout.Layout {
	return serverboundKeepAliveLayout
}

func (pk *ServerboundKeepAlive) Fields() []any {
	return []any{&pk.KeepAliveID}
}
