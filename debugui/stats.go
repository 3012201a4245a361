package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/kamstrup/intmap"

	"github.com/plus3/tetris/session"
)

const (
	columnCommand = iota
	columnCount
	columnAvg
	columnMin
	columnMax
)

// StatsWindow shows frame timing and per-command execution stats of a session.
// X and Y place the window when it first appears.
type StatsWindow struct {
	X, Y float32

	session   *session.Session
	lastFrame time.Time
	frames    *history
	latency   *intmap.Map[session.Command, *history]
	size      int
}

// NewStatsWindow keeps historyFrames samples per plot. historyFrames below 1 panics.
func NewStatsWindow(s *session.Session, historyFrames int) *StatsWindow {
	return &StatsWindow{
		X:         10,
		Y:         10,
		session:   s,
		lastFrame: time.Now(),
		frames:    newHistory(historyFrames),
		latency:   intmap.New[session.Command, *history](session.CommandCount),
		size:      historyFrames,
	}
}

// Item adapts the window for Overlay.Add.
func (w *StatsWindow) Item() Item {
	return Item{Render: w.Render}
}

func (w *StatsWindow) sample(stats *session.Stats) {
	now := time.Now()
	w.frames.push(float32(now.Sub(w.lastFrame).Seconds() * 1000))
	w.lastFrame = now

	for _, cs := range stats.Commands {
		h, ok := w.latency.Get(cs.Command)
		if !ok {
			h = newHistory(w.size)
			w.latency.Put(cs.Command, h)
		}
		h.push(float32(cs.AvgDuration.Microseconds()) / 1000)
	}
}

func (w *StatsWindow) Render() {
	stats := w.session.Stats()
	w.sample(stats)

	imgui.SetNextWindowPosV(imgui.NewVec2(w.X, w.Y), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(380, 420), imgui.CondOnce)

	if !imgui.BeginV("Session Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := w.frames.avg()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	imgui.PlotLinesFloatPtr("##frametime", &w.frames.ordered()[0], int32(w.size))
	imgui.Separator()

	imgui.Text(fmt.Sprintf("Games: %d | Game Overs: %d", stats.Games, stats.GameOvers))
	imgui.Text(fmt.Sprintf("Locks: %d | Holds: %d | Lines: %d", stats.Locks, stats.Holds, stats.Lines))
	imgui.Text(fmt.Sprintf("Commands: %d", stats.TotalCommands))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("Commands", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Command")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		commands := stats.Commands
		if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sortCommands(commands, int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionDescending)
		}

		for _, cs := range commands {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(cs.Command.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", cs.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(millis(cs.AvgDuration))
			imgui.TableNextColumn()
			imgui.Text(millis(cs.MinDuration))
			imgui.TableNextColumn()
			imgui.Text(millis(cs.MaxDuration))
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Command Latency") {
		if implot.BeginPlotV("Avg Latency", imgui.NewVec2(-1, 200), 0) {
			implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
			for cmd := range session.Command(session.CommandCount) {
				h, ok := w.latency.Get(cmd)
				if !ok {
					continue
				}
				implot.PlotLineFloatPtrInt(cmd.String(), &h.ordered()[0], int32(w.size))
			}
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000.0)
}

// sortCommands orders rows by a table column.
func sortCommands(commands []session.CommandStats, column int, descending bool) {
	sort.SliceStable(commands, func(i, j int) bool {
		left, right := commands[i], commands[j]
		if descending {
			left, right = right, left
		}

		switch column {
		case columnCount:
			return left.ExecutionCount < right.ExecutionCount
		case columnAvg:
			return left.AvgDuration < right.AvgDuration
		case columnMin:
			return left.MinDuration < right.MinDuration
		case columnMax:
			return left.MaxDuration < right.MaxDuration
		default:
			return left.Command < right.Command
		}
	})
}
