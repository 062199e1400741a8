package packet

import (
	"errors"
	"testing"

	"github.com/danmuck/mobwire/internal/protocol/layout"
	"github.com/danmuck/mobwire/internal/protocol/wire"
	"github.com/danmuck/mobwire/internal/testutil/testlog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func allPools() []Pool {
	var pools []Pool
	for _, phase := range []Phase{Handshake, Status, Login, Game} {
		for _, dir := range []Direction{Clientbound, Serverbound} {
			pools = append(pools, NewPool(phase, dir))
		}
	}
	return pools
}

func TestRegisteredPacketsMatchTheirLayouts(t *testing.T) {
	testlog.Start(t)
	total := 0
	for _, pool := range allPools() {
		for _, id := range pool.IDs() {
			factory, err := pool.Lookup(id)
			require.NoError(t, err)
			pk := factory()
			require.Equal(t, id, pk.ID(), "%s %s id", pool.Phase(), pool.Direction())
			require.NoError(t, pk.Layout().Validate())
			require.Len(t, pk.Fields(), len(pk.Layout().Fields), pk.Layout().Name)

			// Zero values always encode and decode back to zero values.
			data, err := layout.Marshal(pk.Layout(), pk)
			require.NoError(t, err, pk.Layout().Name)
			fresh := factory()
			require.NoError(t, layout.Unmarshal(fresh.Layout(), data, fresh))
			require.Equal(t, pk, fresh)
			total++
		}
	}
	require.Equal(t, 16, total)
}

func TestPoolLookupUnknownType(t *testing.T) {
	pool := NewPool(Game, Clientbound)
	_, err := pool.Lookup(0x7f)
	var unknown *UnknownPacketTypeError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, int32(0x7f), unknown.ID)
	require.Equal(t, Game, unknown.Phase)
	require.Contains(t, err.Error(), "game clientbound")
}

func TestPoolsAreSeparatedByPhaseAndDirection(t *testing.T) {
	factory, err := NewPool(Status, Serverbound).Lookup(0x00)
	require.NoError(t, err)
	require.IsType(t, &StatusRequest{}, factory())

	factory, err = NewPool(Status, Clientbound).Lookup(0x00)
	require.NoError(t, err)
	require.IsType(t, &StatusResponse{}, factory())

	_, err = NewPool(Handshake, Clientbound).Lookup(0x00)
	require.Error(t, err)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	require.Panics(t, func() {
		Register(Game, Clientbound, IDAddMob, func() Packet { return &AddMob{} })
	})
}

func TestParsePhaseAndDirection(t *testing.T) {
	p, err := ParsePhase("play")
	require.NoError(t, err)
	require.Equal(t, Game, p)
	_, err = ParsePhase("config")
	require.Error(t, err)

	d, err := ParseDirection(" Serverbound ")
	require.NoError(t, err)
	require.Equal(t, Serverbound, d)
	_, err = ParseDirection("sideways")
	require.Error(t, err)
}

func sampleAddMob() *AddMob {
	return &AddMob{
		EntityID:   300,
		UUID:       uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff"),
		EntityType: 50,
		X:          1.5,
		Y:          64.0,
		Z:          -3.25,
		XRot:       10,
		YRot:       -5,
		YHeadRot:   0,
		XVel:       0,
		YVel:       400,
		ZVel:       65535,
	}
}

func TestAddMobRoundTrip(t *testing.T) {
	in := sampleAddMob()
	data, err := layout.Marshal(in.Layout(), in)
	require.NoError(t, err)
	require.Len(t, data, 2+16+1+24+3+6)

	out := &AddMob{}
	require.NoError(t, layout.Unmarshal(out.Layout(), data, out))
	require.Equal(t, in, out)
}

// Swapping two same-width fields in the layout cannot be detected by the
// codec: decoding succeeds with values attributed to the wrong names.
func TestSwappedLayoutMisattributesSilently(t *testing.T) {
	in := sampleAddMob()
	data, err := layout.Marshal(in.Layout(), in)
	require.NoError(t, err)

	fields := append([]layout.Field(nil), addMobLayout.Fields...)
	xi, yi := addMobLayout.Index("x_rot"), addMobLayout.Index("y_rot")
	fields[xi], fields[yi] = fields[yi], fields[xi]
	swapped := layout.Must(layout.New("add_mob_swapped", fields...))

	r := wire.NewReader(data)
	rec, err := layout.DecodeRecord(r, swapped)
	require.NoError(t, err)
	require.Zero(t, r.Remaining())

	xRot, _ := rec.Get("x_rot")
	yRot, _ := rec.Get("y_rot")
	require.Equal(t, in.YRot, xRot)
	require.Equal(t, in.XRot, yRot)
}

func TestTeleportEntityNestedPosition(t *testing.T) {
	in := &TeleportEntity{EntityID: 9, Position: Vec3{X: 1, Y: 2, Z: 3}, YRot: -1, XRot: 1, OnGround: true}
	data, err := layout.Marshal(in.Layout(), in)
	require.NoError(t, err)
	size, ok := vec3Layout.FixedSize()
	require.True(t, ok)
	require.Len(t, data, 1+size+1+1+1)

	out := &TeleportEntity{}
	require.NoError(t, layout.Unmarshal(out.Layout(), data, out))
	require.Equal(t, in, out)

	err = layout.Unmarshal(out.Layout(), data[:10], &TeleportEntity{})
	var fe *layout.FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "position.y", fe.Field)
}

func TestClientIntentionHostNameLimit(t *testing.T) {
	in := &ClientIntention{ProtocolVersion: ProtocolVersion, HostName: "localhost", Port: 25565, Intention: IntentionStatus}
	data, err := layout.Marshal(in.Layout(), in)
	require.NoError(t, err)
	require.Equal(t, []byte{0xf5, 0x05}, data[:2])

	out := &ClientIntention{}
	require.NoError(t, layout.Unmarshal(out.Layout(), data, out))
	require.Equal(t, in, out)
}
