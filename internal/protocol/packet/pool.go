package packet

import (
	"fmt"
	"sort"
)

type poolKey struct {
	phase     Phase
	direction Direction
}

// packets maps each phase and direction to its packet factories.
var packets = map[poolKey]map[int32]func() Packet{}

// Register registers a packet factory for the given phase, direction and
// id. It is called from init only; a duplicate id panics.
func Register(phase Phase, direction Direction, id int32, factory func() Packet) {
	key := poolKey{phase, direction}
	if packets[key] == nil {
		packets[key] = map[int32]func() Packet{}
	}
	if _, dup := packets[key][id]; dup {
		panic(fmt.Sprintf("packet: duplicate %s %s id 0x%02x", phase, direction, id))
	}
	packets[key][id] = factory
}

// UnknownPacketTypeError is returned when an id has no layout in a pool.
type UnknownPacketTypeError struct {
	Phase     Phase
	Direction Direction
	ID        int32
}

func (e *UnknownPacketTypeError) Error() string {
	return fmt.Sprintf("packet: unknown %s %s packet type 0x%02x", e.Phase, e.Direction, e.ID)
}

// Pool is the closed set of packet factories for one phase and direction.
type Pool struct {
	phase     Phase
	direction Direction
	factories map[int32]func() Packet
}

// NewPool creates a Pool populated with the registered factories.
func NewPool(phase Phase, direction Direction) Pool {
	factories := map[int32]func() Packet{}
	for id, factory := range packets[poolKey{phase, direction}] {
		factories[id] = factory
	}
	return Pool{phase: phase, direction: direction, factories: factories}
}

func (p Pool) Phase() Phase {
	return p.phase
}

func (p Pool) Direction() Direction {
	return p.direction
}

// Lookup returns the factory for id.
func (p Pool) Lookup(id int32) (func() Packet, error) {
	factory, ok := p.factories[id]
	if !ok {
		return nil, &UnknownPacketTypeError{Phase: p.phase, Direction: p.direction, ID: id}
	}
	return factory, nil
}

// IDs returns the registered ids in ascending order.
func (p Pool) IDs() []int32 {
	ids := make([]int32, 0, len(p.factories))
	for id := range p.factories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func init() {
	Register(Handshake, Serverbound, IDClientIntention, func() Packet { return &ClientIntention{} })

	Register(Status, Serverbound, IDStatusRequest, func() Packet { return &StatusRequest{} })
	Register(Status, Serverbound, IDPing, func() Packet { return &Ping{} })
	Register(Status, Clientbound, IDStatusResponse, func() Packet { return &StatusResponse{} })
	Register(Status, Clientbound, IDPong, func() Packet { return &Pong{} })

	Register(Login, Serverbound, IDHello, func() Packet { return &Hello{} })
	Register(Login, Clientbound, IDLoginDisconnect, func() Packet { return &LoginDisconnect{} })
	Register(Login, Clientbound, IDGameProfile, func() Packet { return &GameProfile{} })
	Register(Login, Clientbound, IDLoginCompression, func() Packet { return &LoginCompression{} })

	Register(Game, Clientbound, IDAddEntity, func() Packet { return &AddEntity{} })
	Register(Game, Clientbound, IDAddMob, func() Packet { return &AddMob{} })
	Register(Game, Clientbound, IDClientboundKeepAlive, func() Packet { return &ClientboundKeepAlive{} })
	Register(Game, Clientbound, IDMoveEntityPos, func() Packet { return &MoveEntityPos{} })
	Register(Game, Clientbound, IDSetEntityMotion, func() Packet { return &SetEntityMotion{} })
	Register(Game, Clientbound, IDTeleportEntity, func() Packet { return &TeleportEntity{} })
	Register(Game, Serverbound, IDServerboundKeepAlive, func() Packet { return &ServerboundKeepAlive{} })
}
