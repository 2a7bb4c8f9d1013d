package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/starlight/ecs"
)

type EntityInfo struct {
	Entity         ecs.Entity
	ComponentTypes []string
}

// EntityBrowser lists live entities in a sortable, filterable table.
type EntityBrowser struct {
	entities      []EntityInfo
	selected      ecs.Entity
	filterText    string
	maxPerPage    int
	currentPage   int
	sortColumn    int
	sortAscending bool
}

func NewEntityBrowser(maxPerPage int) *EntityBrowser {
	if maxPerPage <= 0 {
		maxPerPage = 100
	}
	return &EntityBrowser{maxPerPage: maxPerPage, sortAscending: true}
}

// Selected returns the entity picked in the table, or ecs.Null.
func (eb *EntityBrowser) Selected() ecs.Entity {
	return eb.selected
}

// Select marks e as the selected entity.
func (eb *EntityBrowser) Select(e ecs.Entity) {
	eb.selected = e
}

// SetFilter replaces the search text and returns to the first page.
func (eb *EntityBrowser) SetFilter(text string) {
	eb.filterText = text
	eb.currentPage = 0
}

// Refresh rebuilds the entity list from store. A selected entity that has
// since been destroyed is cleared.
func (eb *EntityBrowser) Refresh(store *ecs.Store) {
	eb.entities = eb.entities[:0]
	for e := range store.Entities() {
		types := store.Components(e)
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = t.String()
		}
		eb.entities = append(eb.entities, EntityInfo{Entity: e, ComponentTypes: names})
	}
	eb.sortEntities()

	if eb.selected != ecs.Null && !store.Valid(eb.selected) {
		eb.selected = ecs.Null
	}
}

// Filtered returns the rows matching the current filter text.
func (eb *EntityBrowser) Filtered() []EntityInfo {
	if eb.filterText == "" {
		return eb.entities
	}

	filterLower := strings.ToLower(eb.filterText)
	filtered := make([]EntityInfo, 0, len(eb.entities))
	for _, entity := range eb.entities {
		idStr := strings.ToLower(entity.Entity.String())
		componentsStr := strings.ToLower(strings.Join(entity.ComponentTypes, " "))
		if strings.Contains(idStr, filterLower) || strings.Contains(componentsStr, filterLower) {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}

func (eb *EntityBrowser) sortEntities() {
	sort.SliceStable(eb.entities, func(i, j int) bool {
		a, b := eb.entities[i], eb.entities[j]
		var less bool

		switch eb.sortColumn {
		case 1:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 2:
			less = len(a.ComponentTypes) < len(b.ComponentTypes)
		default:
			less = a.Entity.Index() < b.Entity.Index()
		}

		if !eb.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowser) Render(store *ecs.Store) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.Refresh(store)

	filter := eb.filterText
	if imgui.InputTextWithHint("##search", "Search...", &filter, imgui.InputTextFlagsNone, nil) {
		eb.SetFilter(filter)
	}
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.SetFilter("")
	}

	filtered := eb.Filtered()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		start := min(eb.currentPage*eb.maxPerPage, len(filtered))
		end := min(start+eb.maxPerPage, len(filtered))
		for _, entity := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selected == entity.Entity
			if imgui.SelectableBoolV(entity.Entity.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = entity.Entity
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(entity.ComponentTypes)))
		}

		imgui.EndTable()
	}

	if len(filtered) > eb.maxPerPage {
		totalPages := (len(filtered) + eb.maxPerPage - 1) / eb.maxPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}
