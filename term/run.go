package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/tetris/session"
)

// Game runs a session on a terminal screen.
type Game struct {
	Screen   tcell.Screen
	Session  *session.Session
	Keys     KeyMap
	Interval time.Duration
}

// Run ticks the session every g.Interval, applies key presses and redraws after each.
// It returns nil when a quit key is pressed and ctx.Err() when ctx is done. The
// screen must already be initialized; Run does not finalize it.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go g.Screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(g.Interval)
	defer ticker.Stop()

	g.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			g.Session.Do(session.Tick)
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action, bound := g.Keys.Lookup(ev)
				if !bound {
					continue
				}
				if action.Quit {
					return nil
				}
				g.Session.Do(action.Command)
			case *tcell.EventResize:
				g.Screen.Sync()
			}
		}
		g.draw()
	}
}

// draw centers the board on the screen.
func (g *Game) draw() {
	snap := g.Session.Snapshot()
	w, h := Size(snap.Width, snap.Height)
	sw, sh := g.Screen.Size()
	Renderer{X: max((sw-w)/2, 0), Y: max((sh-h)/2, 0)}.Draw(g.Screen, snap)
	g.Screen.Show()
}
