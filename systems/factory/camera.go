package factory

import (
	"github.com/quiltvale/woolfang/archetypes"
	"github.com/quiltvale/woolfang/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: components.Vector{X: x, Y: y},
		Alpha:    1,
	})
}
