package assets

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Stage holds what the scene needs from a Tiled map.
type Stage struct {
	Name     string
	Width    int
	Height   int
	SpawnX   float64
	SpawnY   float64
	HasSpawn bool
}

// LoadStage reads an embedded Tiled map such as "levels/stage.tmx".
func LoadStage(path string) (*Stage, error) {
	return loadStage(levelFS, path)
}

func loadStage(fsys fs.FS, path string) (*Stage, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", path, err)
	}

	stage := &Stage{
		Name:   path,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" || len(og.Objects) == 0 {
			continue
		}
		// Single player: the first spawn wins.
		o := og.Objects[0]
		stage.SpawnX = o.X
		stage.SpawnY = o.Y
		stage.HasSpawn = true
		break
	}

	return stage, nil
}
