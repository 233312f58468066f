package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/systems"
	"golang.org/x/image/font/basicfont"
)

// TitleScene is the entry screen. Enter starts from the furthest unlocked
// level; Escape quits via the window close path.
type TitleScene struct {
	sceneChanger SceneChanger
	startLevel   int
	bestScore    int
	loaded       bool
}

func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	if !ts.loaded {
		ts.loaded = true
		if progress, err := systems.LoadProgress(); err == nil && progress != nil {
			ts.startLevel = progress.LastUnlocked
			for _, r := range progress.Results {
				ts.bestScore += r.Score
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ts.sceneChanger.ChangeScene(NewWorldScene(ts.sceneChanger, ts.startLevel))
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.DuskPurple)

	face := basicfont.Face7x13
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	drawCentered(screen, "W O O L F A N G", face, width, height/2-40, cfg.WoolGold)
	drawCentered(screen, "Rescue the flock. Mind the wolves.", face, width, height/2-16, cfg.White)
	drawCentered(screen, "Enter: start    Arrows/AD: move    Space: jump    E: rescue", face, width, height/2+24, cfg.White)
	if ts.bestScore > 0 {
		drawCentered(screen, fmt.Sprintf("Best total score: %d", ts.bestScore), face, width, height/2+48, cfg.HerbGreen)
	}
}

func drawCentered(screen *ebiten.Image, msg string, face *basicfont.Face, width, y float64, clr color.Color) {
	textWidth := len(msg) * 7
	x := int((width - float64(textWidth)) / 2)
	text.Draw(screen, msg, face, x, int(y), clr)
}
