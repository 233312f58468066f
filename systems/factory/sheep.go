package factory

import (
	"github.com/quiltvale/woolfang/archetypes"
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/gamemath"
	"github.com/quiltvale/woolfang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSheep spawns an idle sheep waiting on its ledge. It stays outside
// the physics simulation until rescued.
func CreateSheep(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	sheep := archetypes.Sheep.Spawn(ecs)

	components.Body.SetValue(sheep, components.BodyData{
		Body: gamemath.Body{
			X: x, Y: y,
			W: cfg.Sheep.Width, H: cfg.Sheep.Height,
			Hitbox: hitbox(cfg.Sheep.Hitbox),

			FacingRight: true,
		},
		IsActive:  true,
		IsVisible: true,
		PrevX:     x, PrevY: y,
	})
	components.Sheep.SetValue(sheep, components.SheepData{})
	components.State.SetValue(sheep, components.StateData{
		CurrentState:  cfg.StateSheepIdle,
		PreviousState: cfg.StateNone,
	})

	obj := resolv.NewObject(x+cfg.Sheep.Hitbox.OffsetX, y+cfg.Sheep.Hitbox.OffsetY,
		cfg.Sheep.Hitbox.W, cfg.Sheep.Hitbox.H)
	obj.AddTags(tags.ResolvSheep)
	obj.Data = sheep
	components.Object.SetValue(sheep, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return sheep
}
