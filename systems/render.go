package systems

import (
	"github.com/automoto/olsen/assets/animations"
	"github.com/automoto/olsen/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var animatedQuery = query.NewQuery(filter.Contains(components.Position, components.AnimationPlayer))

// SpriteRenderer draws the current frame of every animated entity.
type SpriteRenderer struct {
	sheets animations.Resolver
	scale  float64
	drawOp *ebiten.DrawImageOptions
}

func NewSpriteRenderer(sheets animations.Resolver, scale float64) *SpriteRenderer {
	if scale <= 0 {
		scale = 1
	}
	return &SpriteRenderer{
		sheets: sheets,
		scale:  scale,
		drawOp: &ebiten.DrawImageOptions{},
	}
}

// Draw renders entities whose sheet has loaded; the rest are skipped.
func (r *SpriteRenderer) Draw(ecs *ecs.ECS, screen *ebiten.Image) {
	animatedQuery.Each(ecs.World, func(e *donburi.Entry) {
		view, ok := components.AnimationPlayer.Get(e).View()
		if !ok {
			return
		}
		atlas, ok := r.sheets.Resolve(view.Atlas)
		if !ok {
			return
		}
		img := atlas.Frame(view.Frame)
		if img == nil {
			return
		}

		pos := components.Position.Get(e)
		w := float64(atlas.Grid.CellWidth)
		h := float64(atlas.Grid.CellHeight)

		r.drawOp.GeoM.Reset()
		if view.FlipX {
			r.drawOp.GeoM.Scale(-1, 1)
			r.drawOp.GeoM.Translate(w, 0)
		}
		if view.FlipY {
			r.drawOp.GeoM.Scale(1, -1)
			r.drawOp.GeoM.Translate(0, h)
		}
		// Anchor at bottom-center
		r.drawOp.GeoM.Translate(-w/2, -h)
		r.drawOp.GeoM.Scale(r.scale, r.scale)
		r.drawOp.GeoM.Translate(pos.X, pos.Y)

		screen.DrawImage(img, r.drawOp)
	})
}
