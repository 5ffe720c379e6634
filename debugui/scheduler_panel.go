package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fruitdrop/ecs"
)

const frameHistorySize = 120

// SchedulerPanel shows per-system timings and a frame time graph.
type SchedulerPanel struct {
	scheduler    *ecs.Scheduler
	frameHistory []float32
	frameIndex   int
}

// NewSchedulerPanel creates a panel for the given scheduler.
func NewSchedulerPanel(scheduler *ecs.Scheduler) *SchedulerPanel {
	return &SchedulerPanel{
		scheduler:    scheduler,
		frameHistory: make([]float32, frameHistorySize),
	}
}

// Item returns the panel as an ImguiItem.
func (p *SchedulerPanel) Item() ImguiItem {
	return ImguiItem{Name: "System Performance", Render: p.Render}
}

func (p *SchedulerPanel) Render() {
	clock := ecs.ReadResource[ecs.Time](p.scheduler.Resources())
	if clock != nil {
		p.frameHistory[p.frameIndex] = float32(clock.Delta * 1000.0)
		p.frameIndex = (p.frameIndex + 1) % len(p.frameHistory)
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)

	if !imgui.BeginV("System Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := p.scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Frames: %d  Fixed steps: %d", stats.Frames, stats.FixedSteps))
	imgui.Text(fmt.Sprintf("System Count: %d", stats.SystemCount))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.frameHistory[0], int32(len(p.frameHistory)))

	systems := append([]ecs.SystemStats(nil), stats.Systems...)
	sort.SliceStable(systems, func(i, j int) bool {
		return systems[i].Stage < systems[j].Stage
	})

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("Systems", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Stage")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		for _, sys := range systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(sys.Stage.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.AvgDuration.Microseconds())/1000.0))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", float64(sys.MaxDuration.Microseconds())/1000.0))
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Resources") {
		for _, name := range p.scheduler.Resources().CollectStats().SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}
