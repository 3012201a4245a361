package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetris/session"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Games    int
	Width    int
	Height   int
	Tick     time.Duration

	// Results
	TotalTime      time.Duration
	Played         int64
	GameOvers      int64
	Locks          int64
	Lines          int64
	TotalCommands  int64
	Commands       []CommandRow
	Scores         Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// CommandRow sums one command's stats across all games.
type CommandRow struct {
	Command session.Command
	Count   int64
	Total   time.Duration
	Max     time.Duration
}

func (c CommandRow) Avg() time.Duration {
	if c.Count == 0 {
		return 0
	}
	return c.Total / time.Duration(c.Count)
}

// Stats summarizes final scores.
type Stats struct {
	Min     int
	Max     int
	Avg     int
	Samples []int
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	total := 0
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / len(s.Samples)
}

// Add folds one session's stats and finished-game scores into the report.
func (r *Report) Add(stats *session.Stats, scores []int) {
	r.Played += stats.Games
	r.GameOvers += stats.GameOvers
	r.Locks += stats.Locks
	r.Lines += stats.Lines
	r.TotalCommands += stats.TotalCommands
	r.Scores.Samples = append(r.Scores.Samples, scores...)

	for _, cs := range stats.Commands {
		i := 0
		for i < len(r.Commands) && r.Commands[i].Command != cs.Command {
			i++
		}
		if i == len(r.Commands) {
			r.Commands = append(r.Commands, CommandRow{Command: cs.Command})
		}
		row := &r.Commands[i]
		row.Count += cs.ExecutionCount
		row.Total += cs.TotalDuration
		row.Max = max(row.Max, cs.MaxDuration)
	}
}

func (r *Report) Finalize() {
	r.Scores.Finalize()
}

// CommandsPerSecond is the combined rate across all games.
func (r *Report) CommandsPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalCommands) / r.TotalTime.Seconds()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Concurrent Games:** {{.Games}}
- **Board:** {{.Width}}x{{.Height}}
- **Tick:** {{.Tick}}

## Gameplay Results
- **Games Started:** {{.Played}}
- **Games Over:** {{.GameOvers}}
- **Pieces Locked:** {{.Locks}}
- **Lines Cleared:** {{.Lines}}
- **Final Score:** {{if .Scores.Samples}}avg {{.Scores.Avg}}, min {{.Scores.Min}}, max {{.Scores.Max}}{{else}}no game finished{{end}}

## Performance Results
- **Total Commands:** {{.TotalCommands}}
- **Total Test Time:** {{.TotalTime}}
- **Throughput:** {{printf "%.0f" .CommandsPerSecond}} commands/s
{{range .Commands}}  - **{{.Command}}:** {{.Count}} runs, avg {{.Avg}}, max {{.Max}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
