package debugui

import (
	"github.com/plus3/starlight/app"
	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/system"
)

// Panels holds the state of every inspector window.
type Panels struct {
	Entities  *EntityBrowser
	Inspector *ComponentInspector
	Pools     *PoolViewer
	Queries   *QueryDebugger
	Systems   *SystemTree
	Stats     *PerformanceStats
}

// Install registers ImguiSystem and spawns one ImguiItem per inspector window.
func Install(application *app.Application) (*Panels, error) {
	store := application.Store()
	ecs.CreateSingleton(store, ImguiInputState{})

	if _, err := system.CreateSystem(application.Systems(), &ImguiSystem{}); err != nil {
		return nil, err
	}

	panels := &Panels{
		Entities:  NewEntityBrowser(100),
		Inspector: NewComponentInspector(),
		Pools:     NewPoolViewer(),
		Queries:   NewQueryDebugger(),
		Systems:   NewSystemTree(),
		Stats:     NewPerformanceStats(120),
	}

	renders := []func(){
		func() { panels.Entities.Render(store) },
		func() { panels.Inspector.Render(store, panels.Entities.Selected()) },
		func() { panels.Pools.Render(store) },
		func() { panels.Queries.Render(store) },
		func() { panels.Systems.Render(application.Systems()) },
		func() {
			var delta float32
			if frame, ok := ecs.LookupSingleton[app.Frame](store); ok {
				delta = float32(frame.Delta.Seconds())
			}
			panels.Stats.Render(store, delta)
		},
	}
	for _, render := range renders {
		ecs.CreateComponent(store, store.Create(), ImguiItem{Render: render})
	}
	return panels, nil
}
