// Command levelc compiles the wall geometry of every level in an assets
// directory and reports what each level turned into.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/automoto/doomerang-walls/config"
	"github.com/automoto/doomerang-walls/server/core"
	"github.com/automoto/doomerang-walls/shared/wallgeom"
)

// levelDump is the JSON shape written by -json.
type levelDump struct {
	Name   string                   `json:"name"`
	Width  int                      `json:"width"`
	Height int                      `json:"height"`
	Stats  wallgeom.Stats           `json:"stats"`
	Bodies []wallgeom.CollisionBody `json:"bodies"`
}

func main() {
	assetsDir := flag.String("assets", "assets", "Assets root directory")
	levelsDir := flag.String("levels", config.Level.LevelsDir, "Levels directory inside the assets root")
	margin := flag.Float64("margin", config.Geometry.BoundaryMargin, "Boundary frame margin in pixels")
	cellSize := flag.Int("cell", config.Geometry.SpaceCellSize, "Collision space cell size in pixels")
	dump := flag.Bool("json", false, "Write compiled bodies as JSON to stdout")
	flag.Parse()

	lc := config.Level
	lc.LevelsDir = *levelsDir
	gc := config.Geometry
	gc.BoundaryMargin = *margin
	gc.SpaceCellSize = *cellSize

	levels, names, err := core.LoadAllServerLevels(*assetsDir, lc, gc)
	if err != nil {
		log.Fatalf("[levelc] %v", err)
	}
	log.Printf("[levelc] compiled %d levels from %s", len(names), *assetsDir)

	if !*dump {
		return
	}

	out := make([]levelDump, 0, len(names))
	for _, name := range names {
		geo := levels[name].Geometry
		out = append(out, levelDump{
			Name:   name,
			Width:  geo.Width,
			Height: geo.Height,
			Stats:  geo.Stats(),
			Bodies: geo.Bodies,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("[levelc] encode: %v", err)
	}
}
