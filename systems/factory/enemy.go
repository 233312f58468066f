package factory

import (
	"github.com/charmbracelet/log"
	"github.com/quiltvale/woolfang/archetypes"
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/gamemath"
	"github.com/quiltvale/woolfang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns one enemy of the named variant patrolling around its
// spawn point. Unknown variants fall back to the wolf so a bad level
// never drops an encounter silently.
func CreateEnemy(ecs *ecs.ECS, x, y float64, typeName string, patrolRange float64) *donburi.Entry {
	tc, ok := cfg.Enemy.Types[typeName]
	if !ok {
		log.Warn("unknown enemy type, spawning wolf", "type", typeName)
		typeName = "Wolf"
		tc = cfg.Enemy.Types[typeName]
	}
	if patrolRange <= 0 {
		patrolRange = cfg.Enemy.DefaultPatrolRange
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	components.Body.SetValue(enemy, components.BodyData{
		Body: gamemath.Body{
			X: x, Y: y,
			W: tc.Width, H: tc.Height,
			Hitbox: hitbox(tc.Hitbox),
		},
		IsActive:  true,
		IsVisible: true,
		PrevX:     x, PrevY: y,
	})

	typeConfig := tc
	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:      typeName,
		TypeConfig:    &typeConfig,
		Direction:     components.Vector{X: 1},
		PatrolOriginX: x,
		PatrolRange:   patrolRange,
		LastX:         x,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StatePatrol,
		PreviousState: cfg.StateNone,
	})

	obj := resolv.NewObject(x+tc.Hitbox.OffsetX, y+tc.Hitbox.OffsetY, tc.Hitbox.W, tc.Hitbox.H)
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return enemy
}
