package leveldata

import (
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0">
 <properties>
  <property name="background" value="dusk"/>
 </properties>
 <tileset firstgid="1" name="terrain" tilewidth="32" tileheight="32" tilecount="8" columns="8"/>
 <layer id="1" name="terrain" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,5,6,0,
3,3,3,3
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="10" y="20"/>
 </objectgroup>
 <objectgroup id="3" name="Sheep">
  <object id="2" x="90" y="30"/>
  <object id="3" x="40" y="30"/>
 </objectgroup>
 <objectgroup id="4" name="Enemies">
  <object id="4" x="60" y="50">
   <properties>
    <property name="type" value="Boar"/>
    <property name="patrolRange" type="float" value="80"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Collectibles">
  <object id="5" x="70" y="10">
   <properties>
    <property name="type" value="golden-wool"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="32" tileheight="32" infinite="0">
 <tileset firstgid="1" name="terrain" tilewidth="32" tileheight="32" tilecount="8" columns="8"/>
 <layer id="1" name="terrain" width="2" height="1">
  <data encoding="csv">
1,1
</data>
 </layer>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/01-test.tmx":  {Data: []byte(testTMX)},
		"levels/00-first.tmx": {Data: []byte(testTMX)},
	}
}

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel(testFS(), "levels/01-test.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Name != "01-test" {
		t.Errorf("name = %q", level.Name)
	}
	if level.Background != "dusk" {
		t.Errorf("background = %q", level.Background)
	}

	// Terrain: gid in the file is the game tile id (firstgid 1).
	g := level.Grid
	if g.WidthInTiles != 4 || g.HeightInTiles != 3 || g.TileSize != 32 {
		t.Fatalf("grid dims %dx%d tile %d", g.WidthInTiles, g.HeightInTiles, g.TileSize)
	}
	if got := g.TileAt(0, 0); got != TileEmpty {
		t.Errorf("tile(0,0) = %d, want empty", got)
	}
	if got := g.TileAt(1, 1); got != TilePlatform {
		t.Errorf("tile(1,1) = %d, want platform", got)
	}
	if got := g.TileAt(1, 2); got != TileWater {
		t.Errorf("tile(1,2) = %d, want water", got)
	}
	if got := g.TileAt(2, 0); got != TileGrass {
		t.Errorf("tile(2,0) = %d, want grass", got)
	}

	if level.PlayerSpawn.X != 10 || level.PlayerSpawn.Y != 20 {
		t.Errorf("player spawn = %+v", level.PlayerSpawn)
	}

	// Sheep come out sorted by X regardless of authoring order.
	if len(level.SheepSpawns) != 2 {
		t.Fatalf("sheep = %d, want 2", len(level.SheepSpawns))
	}
	if level.SheepSpawns[0].X != 40 || level.SheepSpawns[1].X != 90 {
		t.Errorf("sheep not sorted by X: %+v", level.SheepSpawns)
	}

	if len(level.EnemySpawns) != 1 {
		t.Fatalf("enemies = %d", len(level.EnemySpawns))
	}
	e := level.EnemySpawns[0]
	if e.Type != "Boar" || e.PatrolRange != 80 {
		t.Errorf("enemy spawn = %+v", e)
	}

	if len(level.Collectibles) != 1 || level.Collectibles[0].Type != "golden-wool" {
		t.Errorf("collectibles = %+v", level.Collectibles)
	}
}

func TestLoadLevelRequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{"levels/bad.tmx": {Data: []byte(noSpawnTMX)}}
	if _, err := LoadLevel(fsys, "levels/bad.tmx"); err == nil {
		t.Error("expected error for missing player spawn")
	}
}

func TestLoadAllLevelsSorted(t *testing.T) {
	levels, err := LoadAllLevels(testFS(), "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("levels = %d, want 2", len(levels))
	}
	if levels[0].Name != "00-first" || levels[1].Name != "01-test" {
		t.Errorf("order = %q, %q", levels[0].Name, levels[1].Name)
	}
}

func TestLoadAllLevelsEmptyDir(t *testing.T) {
	if _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected error for no levels")
	}
}

const bareTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="32" tileheight="32" infinite="0">
 <tileset firstgid="1" name="terrain" tilewidth="32" tileheight="32" tilecount="8" columns="8"/>
 <layer id="1" name="terrain" width="2" height="1">
  <data encoding="csv">
1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="5" y="6"/>
 </objectgroup>
</map>
`

func TestLoadLevelWithoutMapProperties(t *testing.T) {
	fsys := fstest.MapFS{"levels/bare.tmx": {Data: []byte(bareTMX)}}
	level, err := LoadLevel(fsys, "levels/bare.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Background != "" {
		t.Errorf("background = %q, want empty when the map has no properties", level.Background)
	}
	if level.PlayerSpawn.X != 5 {
		t.Errorf("player spawn = %+v", level.PlayerSpawn)
	}
}
