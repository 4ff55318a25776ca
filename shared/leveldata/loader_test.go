package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/doomerang-walls/config"
	"github.com/stretchr/testify/require"
)

// gid 1: open floor, gid 2: full block, gid 3: inset block, gid 4: lamp.
// Properties appear both untyped and with type="int".
const testTileset = `
 <tileset firstgid="1" name="mars" tilewidth="32" tileheight="32" tilecount="4" columns="2">
  <image source="mars.png" width="64" height="64"/>
  <tile id="0">
   <properties>
    <property name="wall" value="0"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="wall" value="1"/>
   </properties>
  </tile>
  <tile id="2">
   <properties>
    <property name="wall" type="int" value="2"/>
   </properties>
  </tile>
  <tile id="3">
   <properties>
    <property name="lightx" type="float" value="0.5"/>
    <property name="lighty" type="float" value="0.25"/>
   </properties>
  </tile>
 </tileset>`

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="4" nextobjectid="3">` + testTileset + `
 <layer id="1" name="floor" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,1,1,1,
1,1,1,1
</data>
 </layer>
 <layer id="2" name="walls" width="4" height="3">
  <data encoding="csv">
2,2,0,0,
0,0,0,4,
1,0,3,3
</data>
 </layer>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="1" x="96" y="40">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="2" x="10" y="40">
   <properties>
    <property name="spawnIndex" value="0"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

// badWallMap uses a tile whose wall property is not an integer.
const badWallMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="32" tileheight="32" infinite="0" nextlayerid="2" nextobjectid="1">
 <tileset firstgid="1" name="broken" tilewidth="32" tileheight="32" tilecount="1" columns="1">
  <image source="broken.png" width="32" height="32"/>
  <tile id="0">
   <properties>
    <property name="wall" value="yes"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="walls" width="2" height="1">
  <data encoding="csv">
1,0
</data>
 </layer>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/mars.tmx": {Data: []byte(testMap)},
	}
}

func TestLoadLevel(t *testing.T) {
	data, err := LoadLevel(testFS(), "levels/mars.tmx", config.Level)
	require.NoError(t, err)

	require.Equal(t, "mars", data.Name)
	require.Equal(t, 32, data.TileWidth)
	require.Equal(t, 128, data.MapWidth)
	require.Equal(t, 96, data.MapHeight)

	// Top TMX row becomes grid row 2.
	want := gridFromRows(t,
		"##..",
		"....",
		"..//",
	)
	require.Equal(t, want, data.Grid)

	require.Equal(t, map[Cell]WallKind{
		{X: 0, Y: 2}: FullBlock,
		{X: 1, Y: 2}: FullBlock,
		{X: 2, Y: 0}: InsetBlock,
		{X: 3, Y: 0}: InsetBlock,
	}, data.ShadowCasters)

	require.Equal(t, []Light{{X: 3.5, Y: 1.25}}, data.Lights)

	require.Equal(t, []SpawnPoint{
		{X: 10, Y: 40, Index: 0},
		{X: 96, Y: 40, Index: 1},
	}, data.SpawnPoints)
}

func TestLoadLevel_UntypedAndTypedWallProperties(t *testing.T) {
	data, err := LoadLevel(testFS(), "levels/mars.tmx", config.Level)
	require.NoError(t, err)

	untyped, err := data.Grid.Kind(0, 2)
	require.NoError(t, err)
	require.Equal(t, FullBlock, untyped)

	typed, err := data.Grid.Kind(2, 0)
	require.NoError(t, err)
	require.Equal(t, InsetBlock, typed)

	require.Equal(t, 4, data.Grid.WallCells())
}

func TestLoadLevel_NonIntegerWallProperty(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/broken.tmx": {Data: []byte(badWallMap)},
	}
	data, err := LoadLevel(fsys, "levels/broken.tmx", config.Level)
	require.Error(t, err)
	require.Nil(t, data)
	require.Contains(t, err.Error(), `property "wall"`)
	require.Contains(t, err.Error(), "levels/broken.tmx")
}

func TestLoadLevel_WallLayerFilter(t *testing.T) {
	cfg := config.Level
	cfg.WallLayers = []string{"floor"}

	data, err := LoadLevel(testFS(), "levels/mars.tmx", cfg)
	require.NoError(t, err)
	require.Zero(t, data.Grid.WallCells())
	require.Empty(t, data.ShadowCasters)
	require.Empty(t, data.Lights)
}

func TestLoadLevel_Missing(t *testing.T) {
	_, err := LoadLevel(testFS(), "levels/nope.tmx", config.Level)
	require.Error(t, err)
	require.Contains(t, err.Error(), "levels/nope.tmx")
}

func TestLoadAllLevels(t *testing.T) {
	fsys := testFS()
	fsys["levels/arena.tmx"] = &fstest.MapFile{Data: []byte(testMap)}
	fsys["levels/notes.txt"] = &fstest.MapFile{Data: []byte("not a level")}

	levels, names, err := LoadAllLevels(fsys, config.Level)
	require.NoError(t, err)
	require.Equal(t, []string{"arena", "mars"}, names)
	require.Len(t, levels, 2)
	require.Equal(t, "arena", levels["arena"].Name)
}

func TestLoadAllLevels_Empty(t *testing.T) {
	_, _, err := LoadAllLevels(fstest.MapFS{}, config.Level)
	require.ErrorContains(t, err, "no .tmx files")
}
