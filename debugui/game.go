package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
)

const miniCell = 8

// GameWindow inspects the live game and offers step and restart controls.
type GameWindow struct {
	X, Y float32

	session *session.Session
}

func NewGameWindow(s *session.Session) *GameWindow {
	return &GameWindow{X: 400, Y: 10, session: s}
}

func (w *GameWindow) Item() Item {
	return Item{Render: w.Render}
}

func colorVec(c tetris.Color, alpha float64) imgui.Vec4 {
	rgba := c.RGBA(alpha)
	return imgui.NewVec4(float32(rgba.R)/255, float32(rgba.G)/255, float32(rgba.B)/255, float32(rgba.A)/255)
}

func pieceText(label string, p tetris.Piece) {
	imgui.Text(label)
	imgui.SameLine()
	imgui.PushStyleColorVec4(imgui.ColText, colorVec(p.Shape.Color(), 1))
	imgui.Text(fmt.Sprintf("%s %dx%d at (%d, %d)", p.Shape.Color(), p.Shape.Width(), p.Shape.Height(), p.X, p.Y))
	imgui.PopStyleColor()
}

func (w *GameWindow) Render() {
	snap := w.session.Snapshot()

	imgui.SetNextWindowPosV(imgui.NewVec2(w.X, w.Y), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 420), imgui.CondOnce)

	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Board: %dx%d", snap.Width, snap.Height))
	imgui.Text(fmt.Sprintf("Score: %d | Lines: %d", snap.Score, snap.Lines))
	if snap.GameOver {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	}
	imgui.Separator()

	pieceText("Current:", snap.Current)
	pieceText("Ghost:  ", snap.Ghost)
	pieceText("Next:   ", snap.Next)
	if snap.HasHeld {
		pieceText("Held:   ", snap.Held)
	} else {
		imgui.Text("Held:    none")
	}
	imgui.Text(fmt.Sprintf("Hold used: %t", snap.HoldUsed))
	imgui.Separator()

	if imgui.Button("Tick") {
		w.session.Do(session.Tick)
	}
	imgui.SameLine()
	if imgui.Button("Hard Drop") {
		w.session.Do(session.HardDrop)
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		w.session.Do(session.Restart)
	}
	imgui.Separator()

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	for y := range snap.Height {
		for x := range snap.Width {
			c, layer := snap.At(x, y)
			alpha := 1.0
			if layer == tetris.LayerGhost {
				alpha = 0.4
			}
			topLeft := imgui.NewVec2(origin.X+float32(x*miniCell), origin.Y+float32(y*miniCell))
			bottomRight := imgui.NewVec2(topLeft.X+miniCell-1, topLeft.Y+miniCell-1)
			drawList.AddRectFilled(topLeft, bottomRight, imgui.ColorU32Vec4(colorVec(c, alpha)))
		}
	}

	imgui.End()
}
