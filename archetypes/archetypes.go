package archetypes

import (
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
		components.State,
	)
	Sheep = newArchetype(
		tags.Sheep,
		components.Sheep,
		components.Body,
		components.Object,
		components.State,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Object,
		components.State,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Body,
		components.Object,
		components.Tween,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
