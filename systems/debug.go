package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every active hitbox when the overlay is toggled on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !body.IsActive {
			return
		}
		hb := body.HitRect()
		vector.StrokeRect(
			screen,
			float32(hb.X+camX), float32(hb.Y+camY),
			float32(hb.W), float32(hb.H),
			1,
			cfg.HitboxGreen,
			false,
		)
	})
}
