// Woolfang is a small deterministic platformer: guide the shepherd,
// rescue the flock, keep the wolves fed on disappointment.
package main

import (
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/scenes"
	"github.com/quiltvale/woolfang/systems"
	"github.com/spf13/cobra"
)

var (
	flagLevel   int
	flagDebug   bool
	flagConfig  string
	flagVerbose bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if flagLevel > 0 {
		g.scene = scenes.NewWorldScene(g, flagLevel-1)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "woolfang",
	Short: "Woolfang - a sheep-rescue platformer",
	Long: `Woolfang is a side-scrolling platformer. Rescue every sheep in the
level to complete it; rescued sheep fall in line behind you, wolves and
boars would rather they didn't.

Examples:
  woolfang
  woolfang --level 2 --debug
  woolfang --config tuning.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
		if err := config.Load(flagConfig, cmd.Flags().Changed("config")); err != nil {
			return err
		}
		config.Debug.DrawHitboxes = flagDebug
		config.Debug.StartLevel = flagLevel

		if err := systems.InitPersistence(); err != nil {
			log.Warn("saves disabled", "err", err)
		}

		ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
		ebiten.SetWindowTitle("Woolfang")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		return ebiten.RunGame(NewGame())
	},
}

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("woolfang %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly in level N (1-based; 0 = title screen)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw hitbox outlines")
	rootCmd.Flags().StringVar(&flagConfig, "config", "woolfang.yaml", "Tuning overrides file")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}
