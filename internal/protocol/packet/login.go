package packet

import (
	"github.com/danmuck/mobwire/internal/protocol/layout"
	"github.com/google/uuid"
)

// Hello starts the login phase with the player name.
type Hello struct {
	Name string
}

var helloLayout = layout.Must(layout.New("hello", layout.Str("name", 16)))

func (*Hello) ID() int32 {
	return IDHello
}

func (*Hello) Layout() *layout.Layout {
	return helloLayout
}

func (pk *Hello) Fields() []any {
	return []any{&pk.Name}
}

// LoginDisconnect ends the login phase with a JSON chat component.
type LoginDisconnect struct {
	Reason string
}

var loginDisconnectLayout = layout.Must(layout.New("login_disconnect", layout.Str("reason", 262144)))

func (*LoginDisconnect) ID() int32 {
	return IDLoginDisconnect
}

func (*LoginDisconnect) Layout() *layout.Layout {
	return loginDisconnectLayout
}

func (pk *LoginDisconnect) Fields() []any {
	return []any{&pk.Reason}
}

// GameProfile finishes login.
type GameProfile struct {
	UUID uuid.UUID
	Name string
}

var gameProfileLayout = layout.Must(layout.New("game_profile",
	layout.Fixed("uuid", layout.UUID),
	layout.Str("name", 16),
))

func (*GameProfile) ID() int32 {
	return IDGameProfile
}

func (*GameProfile) Layout() *layout.Layout {
	return gameProfileLayout
}

func (pk *GameProfile) Fields() []any {
	return []any{&pk.UUID, &pk.Name}
}

// LoginCompression announces the compression threshold. The codec decodes
// it; acting on it belongs to the transport.
type LoginCompression struct {
	Threshold int32
}

var loginCompressionLayout = layout.Must(layout.New("login_compression", layout.Var("threshold", layout.Int32)))

func (*LoginCompression) ID() int32 {
	return IDLoginCompression
}

func (*LoginCompression) Layout() *layout.Layout {
	return loginCompressionLayout
}

func (pk *LoginCompression) Fields() []any {
	return []any{&pk.Threshold}
}
