package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/meadow/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// barCells is the width of the text progress bar.
const barCells = 24

// LoadingUI holds the ebitenui panel shown while the scene is built
type LoadingUI struct {
	UI *ebitenui.UI

	// Widget references for updates
	statusLabel   *widget.Label
	progressLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewLoadingUI creates the loading panel
func NewLoadingUI() (*LoadingUI, error) {
	lui := &LoadingUI{}
	if err := lui.loadFonts(); err != nil {
		return nil, err
	}
	lui.buildUI()
	return lui, nil
}

func (lui *LoadingUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("loading ui: font: %w", err)
	}

	lui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   32,
	}
	lui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	lui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	return nil
}

func (lui *LoadingUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Scene.SkyColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 16, Bottom: 16, Left: 32, Right: 32}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 30, 40, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Loading.Title, &lui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	lui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &lui.normalFace, &widget.LabelColor{
			Idle: cfg.LightBlue,
		}),
	)
	panel.AddChild(lui.statusLabel)

	lui.progressLabel = widget.NewLabel(
		widget.LabelOpts.Text(progressBar(0), &lui.smallFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	panel.AddChild(lui.progressLabel)

	rootContainer.AddChild(panel)

	lui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetProgress shows the current stage and the fraction of stages done.
func (lui *LoadingUI) SetProgress(status string, done float32) {
	lui.statusLabel.Label = status
	lui.progressLabel.Label = progressBar(done)
}

// progressBar renders done in [0, 1] as a fixed-width bar.
func progressBar(done float32) string {
	filled := int(min(max(done, 0), 1) * barCells)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barCells-filled) + "]"
}

// Update calls the UI's Update method
func (lui *LoadingUI) Update() {
	lui.UI.Update()
}

// Draw renders the panel
func (lui *LoadingUI) Draw(screen *ebiten.Image) {
	lui.UI.Draw(screen)
}
