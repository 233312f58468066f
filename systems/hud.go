package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/tags"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 10
	heartSize     = 14
	heartGap      = 4
	hudLineHeight = 16
)

// DrawHUD renders hearts, the rescue tally and the score in the top-left
// corner, plus the end-of-level banners.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	drawHearts(screen, player)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	face := basicfont.Face7x13
	y := hudMargin + heartSize + hudLineHeight
	text.Draw(screen, fmt.Sprintf("Sheep %d/%d", level.SheepRescued, level.SheepTotal), face, hudMargin, y, cfg.White)
	y += hudLineHeight
	text.Draw(screen, fmt.Sprintf("Score %d", level.Score), face, hudMargin, y, cfg.White)
	if level.GoldenWool > 0 {
		y += hudLineHeight
		text.Draw(screen, fmt.Sprintf("Golden wool %d", level.GoldenWool), face, hudMargin, y, cfg.WoolGold)
	}

	drawBanners(screen, level)
}

func drawHearts(screen *ebiten.Image, player *components.PlayerData) {
	for i := 0; i < player.MaxHearts; i++ {
		clr := cfg.HeartPink
		if i >= player.Hearts {
			clr = color.RGBA{R: 60, G: 60, B: 60, A: 255}
		}
		x := hudMargin + i*(heartSize+heartGap)
		vector.FillRect(screen,
			float32(x), float32(hudMargin),
			float32(heartSize), float32(heartSize),
			clr, false)
	}
}

// drawBanners shows the level-complete and level-failed messages once the
// run is over.
func drawBanners(screen *ebiten.Image, level *components.LevelData) {
	var msg string
	switch {
	case level.Complete:
		msg = fmt.Sprintf("Flock complete! Score %d  -  press E to continue", level.Score)
	case level.Failed:
		msg = "The wolves won this time  -  press E to retry"
	default:
		return
	}

	face := basicfont.Face7x13
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, float32(height/2-24), float32(width), 48, cfg.PauseOverlay, false)

	textWidth := len(msg) * 7
	x := int((width - float64(textWidth)) / 2)
	text.Draw(screen, msg, face, x, int(height/2)+4, cfg.White)
}
