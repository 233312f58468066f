package factory

import (
	"github.com/charmbracelet/log"
	"github.com/quiltvale/woolfang/archetypes"
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/gamemath"
	"github.com/quiltvale/woolfang/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollectible places one pickup bobbing around its anchor point.
func CreateCollectible(ecs *ecs.ECS, x, y float64, typeName string) *donburi.Entry {
	tc, ok := cfg.Collectible.Types[typeName]
	if !ok {
		log.Warn("unknown collectible type, using berry", "type", typeName)
		typeName = "berry"
		tc = cfg.Collectible.Types[typeName]
	}

	collectible := archetypes.Collectible.Spawn(ecs)
	size := cfg.Collectible.Size

	components.Body.SetValue(collectible, components.BodyData{
		Body: gamemath.Body{
			X: x, Y: y,
			W: size, H: size,
			Hitbox: gamemath.Hitbox{W: size, H: size},
		},
		IsActive:  true,
		IsVisible: true,
		PrevX:     x, PrevY: y,
	})
	typeConfig := tc
	components.Collectible.SetValue(collectible, components.CollectibleData{
		TypeName:   typeName,
		TypeConfig: &typeConfig,
		BaseY:      y,
	})

	// The pickup floats: down then back up, restarted by the object
	// system when the cycle completes.
	half := float32(cfg.Collectible.BobPeriod / 2)
	bob := float32(cfg.Collectible.BobHeight)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, bob, half, ease.InOutSine),
		gween.New(bob, 0, half, ease.InOutSine),
	)
	components.Tween.Set(collectible, tw)

	obj := resolv.NewObject(x, y, size, size)
	obj.AddTags(tags.ResolvCollectible)
	obj.Data = collectible
	components.Object.SetValue(collectible, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return collectible
}
