package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/starlight/ecs"
)

const queryPreviewLimit = 50

// QueryDebugger builds an ad hoc view from component types picked in the UI.
type QueryDebugger struct {
	include map[string]bool
	exclude map[string]bool
}

func NewQueryDebugger() *QueryDebugger {
	return &QueryDebugger{
		include: make(map[string]bool),
		exclude: make(map[string]bool),
	}
}

// Include toggles whether entities must have the component named typeName.
func (qd *QueryDebugger) Include(typeName string, on bool) {
	setFlag(qd.include, typeName, on)
}

// Exclude toggles whether entities must lack the component named typeName.
func (qd *QueryDebugger) Exclude(typeName string, on bool) {
	setFlag(qd.exclude, typeName, on)
}

func (qd *QueryDebugger) Clear() {
	clear(qd.include)
	clear(qd.exclude)
}

// View resolves the selection against the types known to store. It returns
// nil while no included type is selected.
func (qd *QueryDebugger) View(store *ecs.Store) *ecs.EntityView {
	var includes, excludes ecs.ComponentList
	for _, t := range store.ComponentTypes() {
		if qd.include[t.String()] {
			includes = append(includes, t)
		}
		if qd.exclude[t.String()] {
			excludes = append(excludes, t)
		}
	}
	if len(includes) == 0 {
		return nil
	}
	return store.View(includes, excludes)
}

func setFlag(flags map[string]bool, name string, on bool) {
	if on {
		flags[name] = true
	} else {
		delete(flags, name)
	}
}

func (qd *QueryDebugger) Render(store *ecs.Store) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if imgui.Button("Clear All") {
		qd.Clear()
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("QueryTypes", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("With")
		imgui.TableSetupColumn("Without")
		imgui.TableHeadersRow()

		for _, t := range store.ComponentTypes() {
			qd.renderTypeRow(t)
		}
		imgui.EndTable()
	}

	imgui.Separator()

	view := qd.View(store)
	if view == nil {
		imgui.Text("No component types selected")
		return
	}

	imgui.Text(fmt.Sprintf("Matching Entities: %d", view.Len()))
	if imgui.TreeNodeStr("Entities") {
		shown := 0
		for e := range view.Iter() {
			if shown == queryPreviewLimit {
				imgui.Text("...")
				break
			}
			imgui.BulletText(e.String())
			shown++
		}
		imgui.TreePop()
	}
}

func (qd *QueryDebugger) renderTypeRow(t reflect.Type) {
	name := t.String()
	imgui.TableNextRow()

	imgui.TableSetColumnIndex(0)
	imgui.Text(name)

	imgui.TableSetColumnIndex(1)
	with := qd.include[name]
	if imgui.Checkbox("##with"+name, &with) {
		qd.Include(name, with)
	}

	imgui.TableSetColumnIndex(2)
	without := qd.exclude[name]
	if imgui.Checkbox("##without"+name, &without) {
		qd.Exclude(name, without)
	}
}
