package packet

import (
	"github.com/danmuck/mobwire/internal/protocol/layout"
	"github.com/google/uuid"
)

// AddMob is sent when a living entity comes into view.
type AddMob struct {
	EntityID   int32
	UUID       uuid.UUID
	EntityType int32
	X          float64
	Y          float64
	Z          float64
	XRot       int8
	YRot       int8
	YHeadRot   int8
	XVel       uint16
	YVel       uint16
	ZVel       uint16
}

var addMobLayout = layout.Must(layout.New("add_mob",
	layout.Var("id", layout.Int32),
	layout.Fixed("uuid", layout.UUID),
	layout.Var("entity_type", layout.Int32),
	layout.Fixed("x", layout.Float64),
	layout.Fixed("y", layout.Float64),
	layout.Fixed("z", layout.Float64),
	layout.Fixed("x_rot", layout.Int8),
	layout.Fixed("y_rot", layout.Int8),
	layout.Fixed("y_head_rot", layout.Int8),
	layout.Fixed("x_vel", layout.Uint16),
	layout.Fixed("y_vel", layout.Uint16),
	layout.Fixed("z_vel", layout.Uint16),
))

// ID is the game clientbound type id of AddMob.
func (*AddMob) ID() int32 {
	return IDAddMob
}

// Layout is the fixed wire order of AddMob fields.
func (*AddMob) Layout() *layout.Layout {
	return addMobLayout
}

// Fields returns pointers to pk's fields in wire order.
func (pk *AddMob) Fields() []any {
	return []any{
		&pk.EntityID,
		&pk.UUID,
		&pk.EntityType,
		&pk.X, &pk.Y, &pk.Z,
		&pk.XRot, &pk.YRot, &pk.YHeadRot,
		&pk.XVel, &pk.YVel, &pk.ZVel,
	}
}
