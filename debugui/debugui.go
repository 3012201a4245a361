// Package debugui draws Dear ImGui windows on top of the graphical frontend.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Item holds a Dear ImGui render function called once per frame.
type Item struct {
	Render func()
}

// Overlay owns the ImGui backend and the items it renders. It creates the window, so
// it must exist before ebiten.RunGame is called.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	items   []Item
}

func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{backend: backend}
}

// Add appends items; they render in the order added.
func (o *Overlay) Add(items ...Item) {
	o.items = append(o.items, items...)
}

// Update builds this frame's widgets. Call it from ebiten.Game.Update.
func (o *Overlay) Update() {
	o.backend.BeginFrame()
	for _, item := range o.items {
		item.Render()
	}
	o.backend.EndFrame()
}

// Draw paints the widgets over screen. Call it last from ebiten.Game.Draw.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

// WantCaptureKeyboard reports whether a widget has keyboard focus, in which case the
// game should ignore key presses.
func (o *Overlay) WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
