package packet

import "github.com/danmuck/mobwire/internal/protocol/layout"

// StatusRequest asks the server for its status document.
type StatusRequest struct{}

var statusRequestLayout = layout.Must(layout.New("status_request"))

func (*StatusRequest) ID() int32              { return IDStatusRequest }
func (*StatusRequest) Layout() *layout.Layout { return statusRequestLayout }
func (*StatusRequest) Fields() []any          { return nil }

// StatusResponse carries the server status as a JSON document.
type StatusResponse struct {
	Status string
}

var statusResponseLayout = layout.Must(layout.New("status_response",
	layout.Str("status", 32767),
))

func (*StatusResponse) ID() int32              { return IDStatusResponse }
func (*StatusResponse) Layout() *layout.Layout { return statusResponseLayout }
func (pk *StatusResponse) Fields() []any       { return []any{&pk.Status} }

// Ping carries a client timestamp the server echoes back in Pong.
type Ping struct {
	Time int64
}

var pingLayout = layout.Must(layout.New("ping", layout.Fixed("time", layout.Int64)))

func (*Ping) ID() int32              { return IDPing }
func (*Ping) Layout() *layout.Layout { return pingLayout }
func (pk *Ping) Fields() []any       { return []any{&pk.Time} }

// Pong echoes the Ping timestamp.
type Pong struct {
	Time int64
}

var pongLayout = layout.Must(layout.New("pong", layout.Fixed("time", layout.Int64)))

func (*Pong) ID() int32              { return IDPong }
func (*Pong) Layout() *layout.Layout { return pongLayout }
func (pk *Pong) Fields() []any       { return []any{&pk.Time} }
