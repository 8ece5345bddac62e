package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PanelActions are the handlers behind the control panel buttons.
type PanelActions struct {
	LoadTileset func()
	Resize      func()
	Export      func()
	Clear       func()
}

// ControlPanel is the button column above the palette.
type ControlPanel struct {
	Container *widget.Container
	selection *widget.Text
}

func (p *ControlPanel) SetSelection(label string) {
	if p.selection.Label != label {
		p.selection.Label = label
	}
}

// BuildEditorUI lays out the control panel in the top right corner. The
// palette itself is drawn directly below it by the editor.
func BuildEditorUI(fontFace *text.Face, width, height int, actions PanelActions) (*ebitenui.UI, *ControlPanel) {
	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newControlTheme(fontFace)
	theme := ui.PrimaryTheme

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, height),
		),
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelBackground)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Controls", fontFace, &widget.LabelColor{Idle: panelText, Disabled: buttonRim}),
	))

	addButton := func(label string, onClick func()) {
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(width, 32),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		))
	}
	addButton("Load Tileset Image", actions.LoadTileset)
	addButton("Resize Grid", actions.Resize)
	addButton("Copy Map to Clipboard", actions.Export)
	addButton("Clear Grid", actions.Clear)

	selection := widget.NewText(
		widget.TextOpts.Text("Selected ID: 1", fontFace, panelText),
	)
	panel.AddChild(selection)

	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	ui.Container = root

	return ui, &ControlPanel{Container: panel, selection: selection}
}
