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

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Body.SetValue(player, components.BodyData{
		Body: gamemath.Body{
			X: x, Y: y,
			W: cfg.Player.Width, H: cfg.Player.Height,
			Hitbox: hitbox(cfg.Player.Hitbox),

			FacingRight: true,
		},
		IsActive:  true,
		IsVisible: true,
		PrevX:     x, PrevY: y,
	})
	components.Player.SetValue(player, components.PlayerData{
		Hearts:    cfg.Player.MaxHealth,
		MaxHearts: cfg.Player.MaxHealth,
		JumpsLeft: cfg.Player.MaxJumps,
		SpawnX:    x,
		SpawnY:    y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.StateIdle,
		PreviousState: cfg.StateNone,
	})

	obj := resolv.NewObject(x+cfg.Player.Hitbox.OffsetX, y+cfg.Player.Hitbox.OffsetY,
		cfg.Player.Hitbox.W, cfg.Player.Hitbox.H)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return player
}

// hitbox converts the config sub-rectangle into the physics type.
func hitbox(hc cfg.HitboxConfig) gamemath.Hitbox {
	return gamemath.Hitbox{
		OffsetX: hc.OffsetX,
		OffsetY: hc.OffsetY,
		W:       hc.W,
		H:       hc.H,
	}
}

// addToSpace registers an object with the shared interaction space, if
// one exists (tests often run without it).
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
