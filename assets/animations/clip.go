package animations

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/olsen/assets"
	"github.com/automoto/olsen/config"
)

// ErrInvalidClip is returned for a clip whose grid has no frames or whose
// cells have no area.
var ErrInvalidClip = errors.New("invalid clip")

// Clip is one spritesheet animation. Clips are built once with the catalog
// and never modified afterwards.
type Clip struct {
	Sheet      string
	CellWidth  int
	CellHeight int
	Columns    int
	Rows       int
	FlipX      bool
	FlipY      bool
	Interval   time.Duration

	// Atlas is set when the catalog loads the sheet.
	Atlas assets.Handle
}

// NewClip builds a clip from its configuration entry.
func NewClip(def config.ClipDef) *Clip {
	return &Clip{
		Sheet:      def.Sheet,
		CellWidth:  def.CellWidth,
		CellHeight: def.CellHeight,
		Columns:    def.Columns,
		Rows:       def.Rows,
		FlipX:      def.FlipX,
		FlipY:      def.FlipY,
		Interval:   time.Duration(def.TickMillis) * time.Millisecond,
	}
}

// Frames returns the number of cells in the clip's grid.
func (c *Clip) Frames() int {
	return c.Columns * c.Rows
}

// Grid returns the layout used to cut the clip's sheet.
func (c *Clip) Grid() assets.Grid {
	return assets.Grid{
		CellWidth:  c.CellWidth,
		CellHeight: c.CellHeight,
		Columns:    c.Columns,
		Rows:       c.Rows,
	}
}

func (c *Clip) Validate() error {
	switch {
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("%w: %s has cell size %dx%d", ErrInvalidClip, c.Sheet, c.CellWidth, c.CellHeight)
	case c.Columns <= 0 || c.Rows <= 0:
		return fmt.Errorf("%w: %s has grid %dx%d", ErrInvalidClip, c.Sheet, c.Columns, c.Rows)
	case c.Interval <= 0:
		return fmt.Errorf("%w: %s has tick interval %s", ErrInvalidClip, c.Sheet, c.Interval)
	}
	return nil
}
