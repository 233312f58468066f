package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quiltvale/woolfang/assets"
	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/systems"
	"github.com/quiltvale/woolfang/systems/factory"
	"github.com/quiltvale/woolfang/timestep"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one level of the game. The simulation advances in fixed
// steps produced by the clock; rendering interpolates between the last
// two steps with the clock's alpha.
type WorldScene struct {
	ecs          *ecs.ECS
	clock        *timestep.Clock
	sceneChanger SceneChanger
	levelIndex   int
	saved        bool
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, levelIndex int) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	pause := systems.GetOrCreatePause(ws.ecs)
	if pause.IsPaused && !ws.clock.Paused() {
		ws.clock.Pause()
	}
	if !pause.IsPaused && ws.clock.Paused() {
		ws.clock.Resume()
	}

	steps, alpha := ws.clock.Advance(time.Now())

	if ws.clock.Paused() {
		// No ticks while frozen, but the unpause toggle still has to
		// be seen; run just the control systems once per frame.
		systems.UpdateInput(ws.ecs)
		systems.UpdatePause(ws.ecs)
		return
	}

	for i := 0; i < steps; i++ {
		ws.ecs.Update()
	}

	if cameraEntry, ok := components.Camera.First(ws.ecs.World); ok {
		components.Camera.Get(cameraEntry).Alpha = alpha
	}

	ws.checkTransition()
}

// checkTransition leaves the scene after a finished level once the player
// confirms with the interact action.
func (ws *WorldScene) checkTransition() {
	levelEntry, ok := components.Level.First(ws.ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if !level.Complete && !level.Failed {
		return
	}
	input := systems.GetInput(ws.ecs)
	if !input.IsPressed(cfg.ActionInteract) {
		return
	}

	switch {
	case level.Failed:
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.levelIndex))
	case level.LevelIndex+1 < len(level.Levels):
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, level.LevelIndex+1))
	default:
		ws.sceneChanger.ChangeScene(NewTitleScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Clear first so an unconfigured frame never shows window garbage.
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that run even when paused
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Fixed-order gameplay pipeline: behavior writes velocities, physics
	// integrates, collision settles positions, then entity interactions
	// and damage are resolved against the settled world.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSheep))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemy))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateInteractions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.UpdateEvents)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = e

	levels := assets.MustLoadLevels()
	levelEntry := factory.CreateLevel(e, levels, ws.levelIndex)
	levelData := components.Level.Get(levelEntry)
	current := levelData.CurrentLevel
	grid := current.Grid

	factory.CreateSpace(e,
		int(grid.PixelWidth()), int(grid.PixelHeight()),
		16, 16,
	)
	factory.CreateCamera(e, current.PlayerSpawn.X, current.PlayerSpawn.Y)

	factory.CreatePlayer(e, current.PlayerSpawn.X, current.PlayerSpawn.Y)
	for _, s := range current.SheepSpawns {
		factory.CreateSheep(e, s.X, s.Y)
	}
	for _, es := range current.EnemySpawns {
		factory.CreateEnemy(e, es.X, es.Y, es.Type, es.PatrolRange)
	}
	for _, c := range current.Collectibles {
		factory.CreateCollectible(e, c.X, c.Y, c.Type)
	}

	// Push the summary to storage the moment the flock is complete.
	components.LevelCompleteEvent.Subscribe(e.World, func(w donburi.World, ev components.LevelComplete) {
		if ws.saved {
			return
		}
		ws.saved = true
		if err := systems.SaveLevelResult(systems.LevelResult{
			LevelIndex:   ev.LevelIndex,
			LevelName:    ev.LevelName,
			SheepRescued: ev.SheepRescued,
			Collected:    ev.Collected,
			GoldenWool:   ev.GoldenWool,
			Score:        ev.Score,
		}); err != nil {
			log.Warn("level result not saved", "err", err)
		}
	})

	ws.clock = timestep.New(cfg.Timestep.TickRate, cfg.Timestep.MaxFrameDelta)

	log.Info("level loaded",
		"level", current.Name,
		"sheep", len(current.SheepSpawns),
		"enemies", len(current.EnemySpawns),
	)
}
