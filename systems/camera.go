package systems

import (
	"math"

	"github.com/quiltvale/woolfang/components"
	"github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player with facing look-ahead,
// clamped so the view never leaves the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}
	grid := levelData.CurrentLevel.Grid

	// Look-ahead eases toward the facing direction, frozen while idle so
	// the view does not drift during small shuffles.
	if math.Abs(body.VelX) > config.Camera.SpeedThreshold {
		target := config.Camera.LookAheadDistanceX
		if !body.FacingRight {
			target = -target
		}
		camera.LookAheadX += (target - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := body.HitRect().CenterX() + camera.LookAheadX
	targetY := body.HitRect().CenterY()

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	minCameraX := screenWidth / 2
	maxCameraX := grid.PixelWidth() - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := grid.PixelHeight() - screenHeight/2

	if maxCameraX < minCameraX {
		maxCameraX = minCameraX
	}
	if maxCameraY < minCameraY {
		maxCameraY = minCameraY
	}

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
