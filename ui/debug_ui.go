package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DebugOverlay is a small panel in the top-left corner showing the player's
// state and animation frame.
type DebugOverlay struct {
	UI *ebitenui.UI

	stateLabel *widget.Label
	frameLabel *widget.Label
	inputLabel *widget.Label

	face text.Face
}

// NewDebugOverlay builds the panel with empty labels.
func NewDebugOverlay() *DebugOverlay {
	d := &DebugOverlay{}
	d.loadFonts()
	d.buildUI()
	return d
}

func (d *DebugOverlay) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	d.face = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (d *DebugOverlay) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 160})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	labelColor := &widget.LabelColor{Idle: color.RGBA{255, 255, 255, 255}}
	d.stateLabel = widget.NewLabel(widget.LabelOpts.Text("", &d.face, labelColor))
	d.frameLabel = widget.NewLabel(widget.LabelOpts.Text("", &d.face, labelColor))
	d.inputLabel = widget.NewLabel(widget.LabelOpts.Text("", &d.face, labelColor))
	panel.AddChild(d.stateLabel)
	panel.AddChild(d.frameLabel)
	panel.AddChild(d.inputLabel)

	rootContainer.AddChild(panel)

	d.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetStatus replaces the panel text.
func (d *DebugOverlay) SetStatus(state, frame, input string) {
	d.stateLabel.Label = state
	d.frameLabel.Label = frame
	d.inputLabel.Label = input
}

func (d *DebugOverlay) Update() {
	d.UI.Update()
}

func (d *DebugOverlay) Draw(screen *ebiten.Image) {
	d.UI.Draw(screen)
}
