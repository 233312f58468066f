package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	cfg "github.com/quiltvale/woolfang/config"
	"golang.org/x/image/font/basicfont"
)

// GameOverScene offers a retry of the failed level or a return to the
// title.
type GameOverScene struct {
	sceneChanger SceneChanger
	levelIndex   int
}

func NewGameOverScene(sc SceneChanger, levelIndex int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (gs *GameOverScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs.sceneChanger.ChangeScene(NewWorldScene(gs.sceneChanger, gs.levelIndex))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.sceneChanger.ChangeScene(NewTitleScene(gs.sceneChanger))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 15, B: 25, A: 255})

	face := basicfont.Face7x13
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	drawCentered(screen, "The flock scattered...", face, width, height/2-24, cfg.BerryRed)
	drawCentered(screen, "Enter: retry    Esc: title", face, width, height/2+16, cfg.White)
}
