package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/leveldata"
	"github.com/quiltvale/woolfang/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Flat-shaded rendering: every tile and entity is a colored rectangle.
// Entity positions are interpolated between the previous and current tick
// by the camera's alpha so 60Hz simulation stays smooth at any refresh
// rate.

func tileColor(id int) (color.RGBA, bool) {
	switch id {
	case leveldata.TileGround:
		return cfg.GrassGreen, true
	case leveldata.TileDirt:
		return cfg.DirtBrown, true
	case leveldata.TileGrass:
		return cfg.GrassGreen, true
	case leveldata.TileStone:
		return cfg.StoneGray, true
	case leveldata.TilePlatform:
		return cfg.WoodTan, true
	case leveldata.TileWater:
		return cfg.WaterBlue, true
	case leveldata.TileRockBarrier:
		return cfg.RockDark, true
	}
	return color.RGBA{}, false
}

// DrawWorld renders the background, the tile grid and every visible
// entity, camera-transformed and culled to the viewport.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	drawBackground(screen, level.CurrentLevel.Background)
	drawTiles(screen, level.CurrentLevel.Grid, camX, camY, width, height)
	drawEntities(ecs, screen, camera, camX, camY)
}

func drawBackground(screen *ebiten.Image, name string) {
	bg := cfg.SkyBlue
	if name == "dusk" {
		bg = cfg.DuskPurple
	}
	screen.Fill(bg)
}

func drawTiles(screen *ebiten.Image, grid *leveldata.TileGrid, camX, camY float64, width, height int) {
	ts := float64(grid.TileSize)

	// Only touch the rows/cols inside the viewport.
	minCol := grid.ColAt(-camX)
	maxCol := grid.ColAt(-camX + float64(width))
	minRow := grid.RowAt(-camY)
	maxRow := grid.RowAt(-camY + float64(height))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			clr, ok := tileColor(grid.TileAt(row, col))
			if !ok {
				continue
			}
			vector.FillRect(
				screen,
				float32(float64(col)*ts+camX), float32(float64(row)*ts+camY),
				float32(ts), float32(ts),
				clr,
				false,
			)
		}
	}
}

func drawEntities(ecs *ecs.ECS, screen *ebiten.Image, camera *components.CameraData, camX, camY float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	padding := 64.0
	minX := camera.Position.X - float64(width)/2 - padding
	maxX := camera.Position.X + float64(width)/2 + padding
	minY := camera.Position.Y - float64(height)/2 - padding
	maxY := camera.Position.Y + float64(height)/2 + padding

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !body.IsVisible {
			return
		}
		x, y := body.RenderPos(camera.Alpha)

		// Viewport culling
		if x+body.W < minX || x > maxX || y+body.H < minY || y > maxY {
			return
		}

		clr, flicker := entityColor(e)
		if flicker {
			return
		}
		vector.FillRect(
			screen,
			float32(x+camX), float32(y+camY),
			float32(body.W), float32(body.H),
			clr,
			false,
		)
		if !e.HasComponent(tags.Collectible) {
			drawFacingMark(screen, body, x+camX, y+camY)
		}
	})
}

// entityColor picks the fill for an entity; the second return asks the
// caller to skip this frame entirely (invulnerability flicker).
func entityColor(e *donburi.Entry) (color.RGBA, bool) {
	switch {
	case e.HasComponent(tags.Player):
		player := components.Player.Get(e)
		if player.InvulnTicks > 0 && (player.InvulnTicks/4)%2 == 0 {
			return color.RGBA{}, true
		}
		return cfg.PlayerBlue, false
	case e.HasComponent(tags.Sheep):
		if components.Sheep.Get(e).Rescued {
			return cfg.SheepCream, false
		}
		return cfg.SheepIdleDim, false
	case e.HasComponent(tags.Enemy):
		return components.Enemy.Get(e).TypeConfig.Color, false
	case e.HasComponent(tags.Collectible):
		return components.Collectible.Get(e).TypeConfig.Color, false
	}
	return cfg.White, false
}

// drawFacingMark puts a small notch on the facing edge so flat rectangles
// still read a direction.
func drawFacingMark(screen *ebiten.Image, body *components.BodyData, x, y float64) {
	markW, markH := 4.0, 4.0
	my := y + body.H*0.3
	mx := x + body.W - markW
	if !body.FacingRight {
		mx = x
	}
	vector.FillRect(screen, float32(mx), float32(my), float32(markW), float32(markH), cfg.White, false)
}
