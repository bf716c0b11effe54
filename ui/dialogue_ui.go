package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/tower-climb/assets"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/dialogue"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const dialoguePadding = 10

// DialogueUI is the speech box shown at the bottom of the screen while a
// conversation is open.
type DialogueUI struct {
	UI *ebitenui.UI

	panel        *widget.Container
	speakerLabel *widget.Label
	bodyText     *widget.Text
	pagerLabel   *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	speakerFace text.Face
	bodyFace    text.Face
	smallFace   text.Face
}

func NewDialogueUI() *DialogueUI {
	dui := &DialogueUI{}
	dui.loadFonts()
	dui.buildUI()
	return dui
}

func (dui *DialogueUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	dui.speakerFace = &text.GoTextFace{Source: bold, Size: 14}
	dui.bodyFace = &text.GoTextFace{Source: regular, Size: 13}
	dui.smallFace = &text.GoTextFace{Source: regular, Size: 10}
}

func (dui *DialogueUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	width := cfg.C.Width - int(cfg.UI.HUDMargin)*2
	dui.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewBorderedNineSliceColor(
			color.RGBA{20, 20, 30, 230}, color.RGBA{240, 240, 240, 255}, 2)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(dialoguePadding)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				Padding:            widget.NewInsetsSimple(int(cfg.UI.HUDMargin)),
			}),
			widget.WidgetOpts.MinSize(width, 0),
		),
	)

	dui.speakerLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &dui.speakerFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 120, 255},
		}),
	)
	dui.panel.AddChild(dui.speakerLabel)

	dui.bodyText = widget.NewText(
		widget.TextOpts.Text("", &dui.bodyFace, color.White),
		widget.TextOpts.MaxWidth(float64(width-dialoguePadding*2)),
	)
	dui.panel.AddChild(dui.bodyText)

	dui.pagerLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &dui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 200, 255},
		}),
	)
	dui.panel.AddChild(dui.pagerLabel)

	rootContainer.AddChild(dui.panel)
	dui.panel.GetWidget().Visibility = widget.Visibility_Hide

	dui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Sync copies the open conversation into the widgets, hiding the panel when
// no dialogue is open.
func (dui *DialogueUI) Sync(d *dialogue.Manager) {
	speaker, ok := d.Speaker()
	if !ok {
		dui.panel.GetWidget().Visibility = widget.Visibility_Hide
		return
	}
	dui.panel.GetWidget().Visibility = widget.Visibility_Show

	dui.speakerLabel.Label = assets.T(speaker.Name)
	dui.bodyText.Label = assets.T(d.CurrentKey())
	dui.pagerLabel.Label = PagerText(d)
}

// PagerText is the footer of the speech box: the page count and what the
// next interaction does.
func PagerText(d *dialogue.Manager) string {
	action := assets.T("dialogue.continue")
	if d.IsLastPage() {
		action = assets.T("dialogue.close")
		if d.HasExternalLink() {
			action = assets.T("dialogue.view_more")
		}
	}
	return fmt.Sprintf("%d/%d  %s", d.Page()+1, d.TotalPages(), action)
}

func (dui *DialogueUI) Update() {
	dui.UI.Update()
}

func (dui *DialogueUI) Draw(screen *ebiten.Image) {
	dui.UI.Draw(screen)
}
