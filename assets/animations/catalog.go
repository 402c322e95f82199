package animations

import (
	"fmt"

	"github.com/automoto/olsen/assets"
	"github.com/automoto/olsen/config"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLoads bounds sheet decoding during catalog construction.
const maxConcurrentLoads = 4

// Loader registers a sheet and returns a handle that may still be pending.
type Loader interface {
	Load(path string, grid assets.Grid) assets.Handle
}

// Resolver looks up the atlas behind a handle.
type Resolver interface {
	Resolve(h assets.Handle) (*assets.Atlas, bool)
}

// Catalog maps (action, facing) to the clip played for it. It is read-only
// once built and safe for concurrent lookups.
type Catalog struct {
	clips map[config.ClipKey]*Clip
}

// BuildCatalog validates every definition, loads every sheet and only then
// returns the catalog. An invalid definition fails the whole build.
func BuildCatalog(defs map[config.ClipKey]config.ClipDef, loader Loader) (*Catalog, error) {
	clips := make(map[config.ClipKey]*Clip, len(defs))
	for key, def := range defs {
		clips[key] = NewClip(def)
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrentLoads)
	for key, clip := range clips {
		g.Go(func() error {
			if err := clip.Validate(); err != nil {
				return fmt.Errorf("clip (%s, %s): %w", key.Action, key.Facing, err)
			}
			clip.Atlas = loader.Load(clip.Sheet, clip.Grid())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Catalog{clips: clips}, nil
}

// Lookup returns the clip for (action, facing).
func (c *Catalog) Lookup(action config.PlayerAction, facing config.Facing) (*Clip, bool) {
	clip, ok := c.clips[config.ClipKey{Action: action, Facing: facing}]
	return clip, ok
}

func (c *Catalog) Len() int {
	return len(c.clips)
}
