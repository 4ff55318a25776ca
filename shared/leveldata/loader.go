package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/doomerang-walls/config"
	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file into a wall grid, shadow casters, lights and
// spawn points. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string, cfg config.LevelConfig) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	grid, err := NewTileGrid(levelMap.Width, levelMap.Height)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:          strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Grid:          grid,
		ShadowCasters: make(map[Cell]WallKind),
		TileWidth:     levelMap.TileWidth,
		TileHeight:    levelMap.TileHeight,
		MapWidth:      levelMap.Width * levelMap.TileWidth,
		MapHeight:     levelMap.Height * levelMap.TileHeight,
	}

	want := levelMap.Width * levelMap.Height
	for _, layer := range levelMap.Layers {
		if !cfg.UsesLayer(layer.Name) {
			continue
		}
		// Infinite maps store chunks instead of a flat tile list.
		if len(layer.Tiles) != want {
			return nil, fmt.Errorf("load TMX %s: layer %q has %d tiles, want %d",
				tmxPath, layer.Name, len(layer.Tiles), want)
		}
		for i, tile := range layer.Tiles {
			if tile == nil || tile.IsNil() || tile.Tileset == nil {
				continue
			}
			tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
			if err != nil {
				// Tiles without a tileset entry carry no properties.
				continue
			}

			// TMX rows run top-down; the grid's row 0 is the bottom.
			row, x := i/levelMap.Width, i%levelMap.Width
			y := levelMap.Height - row - 1

			v, err := intProperty(tilesetTile.Properties, cfg.WallProperty)
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: tile %d of %s: %w",
					tmxPath, tile.ID, tile.Tileset.Name, err)
			}
			if kind := WallKind(v); kind > Open {
				if err := data.Grid.Set(x, y, kind); err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
				data.ShadowCasters[Cell{X: x, Y: y}] = kind
			}

			lx, lok := floatProperty(tilesetTile.Properties, cfg.LightXProperty)
			ly, yok := floatProperty(tilesetTile.Properties, cfg.LightYProperty)
			if lok && yok {
				data.Lights = append(data.Lights, Light{X: float64(x) + lx, Y: float64(y) + ly})
			}
		}
	}

	// Parse player spawn points from the spawn object group
	for _, og := range levelMap.ObjectGroups {
		if og.Name != cfg.SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			index, err := intProperty(o.Properties, cfg.SpawnIndexKey)
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: spawn object %d: %w", tmxPath, o.ID, err)
			}
			data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: index,
			})
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// rawProperty returns the value of the named property whatever type Tiled
// declared it with; the typed getters skip properties of other types.
func rawProperty(props tiled.Properties, name string) (string, bool) {
	for _, p := range props {
		if p != nil && p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// intProperty reads an integer property whether or not Tiled declared it
// with type="int". A missing property is 0.
func intProperty(props tiled.Properties, name string) (int, error) {
	s, ok := rawProperty(props, name)
	if !ok || s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("property %q: %w", name, err)
	}
	return v, nil
}

func floatProperty(props tiled.Properties, name string) (float64, bool) {
	s, ok := rawProperty(props, name)
	if !ok || s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// LoadAllLevels discovers all .tmx files in cfg.LevelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, cfg config.LevelConfig) (map[string]*LevelData, []string, error) {
	pattern := cfg.LevelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", cfg.LevelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
