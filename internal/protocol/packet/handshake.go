package packet

import "github.com/danmuck/mobwire/internal/protocol/layout"

// Intentions carried by ClientIntention.
const (
	IntentionStatus int32 = 1
	IntentionLogin  int32 = 2
)

// ClientIntention opens a connection and selects the next phase.
type ClientIntention struct {
	ProtocolVersion int32
	HostName        string
	Port            uint16
	Intention       int32
}

var clientIntentionLayout = layout.Must(layout.New("client_intention",
	layout.Var("protocol_version", layout.Int32),
	layout.Str("host_name", 255),
	layout.Fixed("port", layout.Uint16),
	layout.Var("intention", layout.Int32),
))

func (*ClientIntention) ID() int32 {
	return IDClientIntention
}

func (*ClientIntention) Layout() *layout.Layout {
	return clientIntentionLayout
}

func (pk *ClientIntention) Fields() []any {
	return []any{&pk.ProtocolVersion, &pk.HostName, &pk.Port, &pk.Intention}
}
