package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/starlight/system"
)

type SystemRow struct {
	Stats     system.SystemStats
	Depth     int
	IsGroup   bool
	Conflicts []system.Conflict
}

// SystemTree shows the nested execution order with per system timings.
type SystemTree struct{}

func NewSystemTree() *SystemTree {
	return &SystemTree{}
}

// Rows flattens manager in execution order.
func (st *SystemTree) Rows(manager *system.Manager) []SystemRow {
	var rows []SystemRow
	manager.Walk(func(sys system.System, stats system.SystemStats, depth int) {
		row := SystemRow{Stats: stats, Depth: depth}
		if group, ok := system.AsGroup(sys); ok {
			row.IsGroup = true
			row.Conflicts = group.Conflicts()
		}
		rows = append(rows, row)
	})
	return rows
}

func (st *SystemTree) Render(manager *system.Manager) {
	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	rows := st.Rows(manager)
	if conflicts := manager.Root().Conflicts(); len(conflicts) > 0 {
		imgui.Text(fmt.Sprintf("Root order conflicts: %d", len(conflicts)))
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SystemTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, row := range rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			name := strings.Repeat("  ", row.Depth) + row.Stats.Name
			if row.IsGroup {
				name += "/"
			}
			imgui.Text(name)
			for _, c := range row.Conflicts {
				imgui.BulletText(fmt.Sprintf("%s declared before %s", c.Before.Name(), c.After.Name()))
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Stats.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(formatDuration(row.Stats.LastDuration))
			imgui.TableNextColumn()
			imgui.Text(formatDuration(row.Stats.AvgDuration))
			imgui.TableNextColumn()
			imgui.Text(formatDuration(row.Stats.MaxDuration))
		}

		imgui.EndTable()
	}

	imgui.End()
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}
