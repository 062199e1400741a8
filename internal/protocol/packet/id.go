package packet

// Handshake phase.
const (
	IDClientIntention int32 = 0x00
)

// Status phase.
const (
	IDStatusRequest  int32 = 0x00
	IDStatusResponse int32 = 0x00
	IDPing           int32 = 0x01
	IDPong           int32 = 0x01
)

// Login phase.
const (
	IDHello            int32 = 0x00
	IDLoginDisconnect  int32 = 0x00
	IDGameProfile      int32 = 0x02
	IDLoginCompression int32 = 0x03
)

// Game phase.
const (
	IDAddEntity            int32 = 0x00
	IDAddMob               int32 = 0x02
	IDClientboundKeepAlive int32 = 0x21
	IDMoveEntityPos        int32 = 0x29
	IDSetEntityMotion      int32 = 0x4f
	IDTeleportEntity       int32 = 0x62

	IDServerboundKeepAlive int32 = 0x0f
)
