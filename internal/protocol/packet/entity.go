package packet

import (
	"github.com/danmuck/mobwire/internal/protocol/layout"
	"github.com/google/uuid"
)

// Vec3 is a position in world coordinates.
type Vec3 struct {
	X, Y, Z float64
}

var vec3Layout = layout.Must(layout.New("vec3",
	layout.Fixed("x", layout.Float64),
	layout.Fixed("y", layout.Float64),
	layout.Fixed("z", layout.Float64),
))

func (v *Vec3) Fields() []any {
	return []any{&v.X, &v.Y, &v.Z}
}

// AddEntity is sent when a non-living entity comes into view. Data is
// interpreted per entity type.
type AddEntity struct {
	EntityID   int32
	UUID       uuid.UUID
	EntityType int32
	X, Y, Z    float64
	XRot, YRot int8
	Data       int32
	XA, YA, ZA int16
}

var addEntityLayout = layout.Must(layout.New("add_entity",
	layout.Var("id", layout.Int32),
	layout.Fixed("uuid", layout.UUID),
	layout.Var("entity_type", layout.Int32),
	layout.Fixed("x", layout.Float64),
	layout.Fixed("y", layout.Float64),
	layout.Fixed("z", layout.Float64),
	layout.Fixed("x_rot", layout.Int8),
	layout.Fixed("y_rot", layout.Int8),
	layout.Fixed("data", layout.Int32),
	layout.Fixed("xa", layout.Int16),
	layout.Fixed("ya", layout.Int16),
	layout.Fixed("za", layout.Int16),
))

func (*AddEntity) ID() int32              { return IDAddEntity }
func (*AddEntity) Layout() *layout.Layout { return addEntityLayout }
func (pk *AddEntity) Fields() []any {
	return []any{
		&pk.EntityID, &pk.UUID, &pk.EntityType,
		&pk.X, &pk.Y, &pk.Z,
		&pk.XRot, &pk.YRot,
		&pk.Data,
		&pk.XA, &pk.YA, &pk.ZA,
	}
}

// MoveEntityPos moves an entity by a delta in 1/4096 block units.
type MoveEntityPos struct {
	EntityID   int32
	XA, YA, ZA int16
	OnGround   bool
}

var moveEntityPosLayout = layout.Must(layout.New("move_entity_pos",
	layout.Var("id", layout.Int32),
	layout.Fixed("xa", layout.Int16),
	layout.Fixed("ya", layout.Int16),
	layout.Fixed("za", layout.Int16),
	layout.Fixed("on_ground", layout.Bool),
))

func (*MoveEntityPos) ID() int32              { return IDMoveEntityPos }
func (*MoveEntityPos) Layout() *layout.Layout { return moveEntityPosLayout }
func (pk *MoveEntityPos) Fields() []any {
	return []any{&pk.EntityID, &pk.XA, &pk.YA, &pk.ZA, &pk.OnGround}
}

// SetEntityMotion sets an entity velocity in 1/8000 block per tick units.
type SetEntityMotion struct {
	EntityID   int32
	XA, YA, ZA int16
}

var setEntityMotionLayout = layout.Must(layout.New("set_entity_motion",
	layout.Var("id", layout.Int32),
	layout.Fixed("xa", layout.Int16),
	layout.Fixed("ya", layout.Int16),
	layout.Fixed("za", layout.Int16),
))

func (*SetEntityMotion) ID() int32              { return IDSetEntityMotion }
func (*SetEntityMotion) Layout() *layout.Layout { return setEntityMotionLayout }
func (pk *SetEntityMotion) Fields() []any {
	return []any{&pk.EntityID, &pk.XA, &pk.YA, &pk.ZA}
}

// TeleportEntity moves an entity to an absolute position.
type TeleportEntity struct {
	EntityID int32
	Position Vec3
	YRot     int8
	XRot     int8
	OnGround bool
}

var teleportEntityLayout = layout.Must(layout.New("teleport_entity",
	layout.Var("id", layout.Int32),
	layout.Nested("position", vec3Layout),
	layout.Fixed("y_rot", layout.Int8),
	layout.Fixed("x_rot", layout.Int8),
	layout.Fixed("on_ground", layout.Bool),
))

func (*TeleportEntity) ID() int32              { return IDTeleportEntity }
func (*TeleportEntity) Layout() *layout.Layout { return teleportEntityLayout }
func (pk *TeleportEntity) Fields() []any {
	return []any{&pk.EntityID, &pk.Position, &pk.YRot, &pk.XRot, &pk.OnGround}
}
