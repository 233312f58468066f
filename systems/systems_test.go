package systems

import (
	"testing"

	"github.com/quiltvale/woolfang/components"
	cfg "github.com/quiltvale/woolfang/config"
	"github.com/quiltvale/woolfang/leveldata"
	"github.com/quiltvale/woolfang/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testGrid builds a 32px grid from rows of digit characters; '.' is empty.
func testGrid(t *testing.T, rows []string) *leveldata.TileGrid {
	t.Helper()
	w, h := len(rows[0]), len(rows)
	cells := make([]int, 0, w*h)
	for _, row := range rows {
		for _, ch := range row {
			if ch == '.' {
				cells = append(cells, 0)
			} else {
				cells = append(cells, int(ch-'0'))
			}
		}
	}
	g, err := leveldata.NewTileGrid(w, h, 32, cells)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return g
}

// newTestWorld builds an ECS with a level singleton and interaction space
// over the given terrain. No renderers, no real keyboard.
func newTestWorld(t *testing.T, rows []string) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	grid := testGrid(t, rows)
	level := leveldata.Level{Name: "test", Grid: grid}
	factory.CreateLevel(e, []leveldata.Level{level}, 0)
	factory.CreateSpace(e, int(grid.PixelWidth()), int(grid.PixelHeight()), 16, 16)
	return e
}

// press sets the current action state, keeping the previous frame for
// edge detection. Call once per simulated tick, before tick().
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

// tick runs one full simulation step in scene order, minus the keyboard
// poll (tests write the input singleton directly via press).
func tick(e *ecs.ECS) {
	UpdatePlayer(e)
	UpdateSheep(e)
	UpdateEnemy(e)
	UpdatePhysics(e)
	UpdateCollisions(e)
	UpdateObjects(e)
	UpdateInteractions(e)
	UpdateCombat(e)
	UpdateEvents(e)
}

// run advances n ticks with no input changes.
func run(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		press(e)
		tick(e)
	}
}

func levelData(t *testing.T, e *ecs.ECS) *components.LevelData {
	t.Helper()
	entry, ok := components.Level.First(e.World)
	if !ok {
		t.Fatal("no level singleton")
	}
	return components.Level.Get(entry)
}

// flatFloor is a 20x6 room with a solid floor on the bottom two rows.
var flatFloor = []string{
	"....................",
	"....................",
	"....................",
	"....................",
	"33333333333333333333",
	"22222222222222222222",
}

// floorY is the top of the floor in flatFloor.
const floorY = 4 * 32
