// Command tetris-stress plays many games with random input and reports throughput.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
)

// moves is the bot's input distribution; hard drops are rarer so games last.
var moves = []session.Command{
	session.MoveLeft, session.MoveLeft, session.MoveLeft,
	session.MoveRight, session.MoveRight, session.MoveRight,
	session.MoveDown, session.MoveDown,
	session.Rotate, session.Rotate,
	session.Hold,
	session.HardDrop,
}

// bot drives one session and remembers how its games ended.
type bot struct {
	session *session.Session
	rng     *rand.Rand
	scores  []int
}

func newBot(width, height int, seed uint64) *bot {
	b := &bot{rng: rand.New(rand.NewPCG(seed, ^seed))}
	b.session = session.New(width, height,
		session.WithSeed(seed),
		session.WithEvents(func(ev tetris.Event) {
			if ev.Kind == tetris.GameOver {
				b.scores = append(b.scores, ev.Score)
			}
		}),
	)
	return b
}

// play feeds random commands to the session until ctx is done. The session's Run loop
// applies them along with its own ticks.
func (b *bot) play(ctx context.Context, tick time.Duration) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		b.session.Run(ctx, tick)
	}()
	defer wg.Wait()

	for {
		// Restart synchronously so a second Restart never queues behind the first.
		if b.session.Snapshot().GameOver {
			b.session.Restart()
		}
		if err := b.session.Send(ctx, moves[b.rng.IntN(len(moves))]); err != nil {
			return
		}
	}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	games := flag.Int("games", runtime.NumCPU(), "The number of games played concurrently.")
	width := flag.Int("width", 10, "Board width.")
	height := flag.Int("height", 20, "Board height.")
	tick := flag.Duration("tick", time.Millisecond, "Gravity interval of every game.")
	seed := flag.Uint64("seed", 1, "Seed of the first game; game i uses seed+i.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *width < tetris.MinWidth || *height < tetris.MinHeight {
		log.Fatalf("board must be at least %dx%d, got %dx%d", tetris.MinWidth, tetris.MinHeight, *width, *height)
	}

	log.Println("Starting tetris stress test...")

	bots := make([]*bot, *games)
	for i := range bots {
		bots[i] = newBot(*width, *height, *seed+uint64(i))
	}

	report := &Report{
		Duration:       *duration,
		Games:          *games,
		Width:          *width,
		Height:         *height,
		Tick:           *tick,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d games for %s...\n", *games, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var wg sync.WaitGroup
	for _, b := range bots {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.play(ctx, *tick)
		}()
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)
	for _, b := range bots {
		report.Add(b.session.Stats(), b.scores)
	}
	report.Finalize()

	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.Printf("Stopped early: %v", ctx.Err())
	}
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
