// Package gui is a graphical frontend built on ebiten.
package gui

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/tetris/debugui"
	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
)

const (
	CellSize   = 28
	PanelWidth = 160
	margin     = 20

	repeatDelay = 0.17
	repeatRate  = 0.05
)

var (
	background = color.RGBA{0x10, 0x10, 0x18, 0xff}
	frame      = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

// WindowSize is the window needed to show a width by height board and its panel.
func WindowSize(width, height int) (int, int) {
	return 2*margin + width*CellSize + PanelWidth, 2*margin + height*CellSize
}

// keyboard is the key state the game polls each update.
type keyboard interface {
	justPressed(k ebiten.Key) bool
	pressed(k ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) justPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeyboard) pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }

// Game implements ebiten.Game. Gravity is not applied here; run the session's Run
// loop alongside it.
type Game struct {
	session  *session.Session
	commands *session.Commands
	overlay  *debugui.Overlay
	keys     keyboard

	left    repeater
	right   repeater
	down    repeater
	stopped atomic.Bool
}

// New builds a Game. overlay may be nil.
func New(s *session.Session, overlay *debugui.Overlay) *Game {
	return &Game{
		session:  s,
		commands: session.NewCommands(),
		overlay:  overlay,
		keys:     ebitenKeyboard{},
		left:     repeater{delay: repeatDelay, rate: repeatRate},
		right:    repeater{delay: repeatDelay, rate: repeatRate},
		down:     repeater{delay: 0, rate: repeatRate},
	}
}

// Stop makes the next Update end the game loop. It is safe to call from any goroutine.
func (g *Game) Stop() {
	g.stopped.Store(true)
}

func (g *Game) Update() error {
	if g.stopped.Load() {
		return ebiten.Termination
	}
	if g.overlay != nil {
		g.overlay.Update()
		if g.overlay.WantCaptureKeyboard() {
			return nil
		}
	}

	if g.keys.justPressed(ebiten.KeyEscape) || g.keys.justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.input(1.0 / float64(ebiten.TPS()))
	g.commands.Flush(g.session)
	return nil
}

// input queues this frame's commands.
func (g *Game) input(dt float64) {
	kb := g.keys
	if g.left.step(kb.justPressed(ebiten.KeyArrowLeft), kb.pressed(ebiten.KeyArrowLeft), dt) {
		g.commands.Push(session.MoveLeft)
	}
	if g.right.step(kb.justPressed(ebiten.KeyArrowRight), kb.pressed(ebiten.KeyArrowRight), dt) {
		g.commands.Push(session.MoveRight)
	}
	if g.down.step(kb.justPressed(ebiten.KeyArrowDown), kb.pressed(ebiten.KeyArrowDown), dt) {
		g.commands.Push(session.MoveDown)
	}

	if kb.justPressed(ebiten.KeyArrowUp) || kb.justPressed(ebiten.KeyX) {
		g.commands.Push(session.Rotate)
	}
	if kb.justPressed(ebiten.KeySpace) {
		g.commands.Push(session.HardDrop)
	}
	if kb.justPressed(ebiten.KeyShiftLeft) || kb.justPressed(ebiten.KeyShiftRight) || kb.justPressed(ebiten.KeyC) {
		g.commands.Push(session.Hold)
	}
	if kb.justPressed(ebiten.KeyR) {
		g.commands.Push(session.Restart)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := g.session.Snapshot()

	drawBoard(screen, snap)
	drawPanel(screen, snap, float32(margin+snap.Width*CellSize+margin))

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func drawCell(screen *ebiten.Image, x, y float32, c tetris.Color, alpha float64) {
	vector.DrawFilledRect(screen, x+1, y+1, CellSize-2, CellSize-2, c.RGBA(alpha), false)
}

func drawBoard(screen *ebiten.Image, snap tetris.Snapshot) {
	w, h := float32(snap.Width*CellSize), float32(snap.Height*CellSize)
	vector.StrokeRect(screen, margin-2, margin-2, w+4, h+4, 2, frame, false)

	for y := range snap.Height {
		for x := range snap.Width {
			c, layer := snap.At(x, y)
			px, py := float32(margin+x*CellSize), float32(margin+y*CellSize)
			switch layer {
			case tetris.LayerEmpty:
				drawCell(screen, px, py, c, 0.3)
			case tetris.LayerGhost:
				drawCell(screen, px, py, c, 0.35)
			case tetris.LayerLocked, tetris.LayerCurrent:
				drawCell(screen, px, py, c, 1)
			}
		}
	}

	if snap.GameOver {
		vector.DrawFilledRect(screen, margin, margin+h/2-30, w, 60, color.RGBA{0x60, 0, 0, 0xe0}, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", margin+int(w)/2-27, margin+int(h)/2-20)
		ebitenutil.DebugPrintAt(screen, "R to restart", margin+int(w)/2-36, margin+int(h)/2+4)
	}
}

func drawShape(screen *ebiten.Image, s tetris.Shape, x, y float32, alpha float64) {
	for p := range s.Cells() {
		drawCell(screen, x+float32(p.X*CellSize), y+float32(p.Y*CellSize), s.Color(), alpha)
	}
}

func drawPanel(screen *ebiten.Image, snap tetris.Snapshot, x float32) {
	ix := int(x)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", snap.Score), ix, margin)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", snap.Lines), ix, margin+40)

	ebitenutil.DebugPrintAt(screen, "NEXT", ix, margin+80)
	drawShape(screen, snap.Next.Shape, x, margin+100, 1)

	label := "HOLD"
	alpha := 1.0
	if snap.HoldUsed {
		label = "HOLD (used)"
		alpha = 0.4
	}
	ebitenutil.DebugPrintAt(screen, label, ix, margin+230)
	if snap.HasHeld {
		drawShape(screen, snap.Held.Shape, x, margin+250, alpha)
	}
}
