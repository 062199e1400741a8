package packet

import (
	"fmt"
	"strings"

	"github.com/danmuck/mobwire/internal/protocol/layout"
)

// ProtocolVersion is the protocol number these layouts are declared for.
const ProtocolVersion int32 = 757

// Packet is one leaf packet shape. Fields returns pointers to the packet's
// fields in the order of its layout.
type Packet interface {
	ID() int32
	Layout() *layout.Layout
	layout.Binder
}

// Phase is a protocol phase. Packet ids are only unique within a phase and
// direction.
type Phase uint8

const (
	Handshake Phase = iota
	Status
	Login
	Game
)

func (p Phase) String() string {
	switch p {
	case Handshake:
		return "handshake"
	case Status:
		return "status"
	case Login:
		return "login"
	case Game:
		return "game"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

func ParsePhase(raw string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "handshake", "handshaking":
		return Handshake, nil
	case "status":
		return Status, nil
	case "login":
		return Login, nil
	case "game", "play":
		return Game, nil
	default:
		return 0, fmt.Errorf("packet: unknown phase %q", raw)
	}
}

// Direction is the sending side of a packet.
type Direction uint8

const (
	Clientbound Direction = iota
	Serverbound
)

func (d Direction) String() string {
	switch d {
	case Clientbound:
		return "clientbound"
	case Serverbound:
		return "serverbound"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "clientbound", "client", "in":
		return Clientbound, nil
	case "serverbound", "server", "out":
		return Serverbound, nil
	default:
		return 0, fmt.Errorf("packet: unknown direction %q", raw)
	}
}
