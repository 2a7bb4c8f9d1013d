package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/starlight/ecs"
)

// PoolViewer shows how many entities hold each component type.
type PoolViewer struct {
	sortColumn    int
	sortAscending bool
}

func NewPoolViewer() *PoolViewer {
	return &PoolViewer{sortAscending: true}
}

// Rows returns the component breakdown of stats in the current sort order.
func (pv *PoolViewer) Rows(stats ecs.StoreStats) []ecs.ComponentStats {
	rows := append([]ecs.ComponentStats(nil), stats.ComponentBreakdown...)
	sort.SliceStable(rows, func(i, j int) bool {
		var less bool
		if pv.sortColumn == 1 {
			less = rows[i].EntityCount < rows[j].EntityCount
		} else {
			less = rows[i].Type < rows[j].Type
		}
		if !pv.sortAscending {
			return !less
		}
		return less
	})
	return rows
}

func (pv *PoolViewer) Render(store *ecs.Store) {
	if !imgui.BeginV("Component Pools", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := store.CollectStats()
	imgui.Text(fmt.Sprintf("Component Types: %d", stats.ComponentTypeCount))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable
	if imgui.BeginTableV("PoolTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Entities")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			pv.sortColumn = int(spec.ColumnIndex())
			pv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range pv.Rows(stats) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row.Type)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.EntityCount))
		}

		imgui.EndTable()
	}

	imgui.End()
}
