package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/starlight/app"
	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/ecs/debugui"
	debugui_ebiten "github.com/plus3/starlight/ecs/debugui/ebiten"
	"github.com/plus3/starlight/platform"
	platform_ebiten "github.com/plus3/starlight/platform/ebiten"
)

func Example() {
	application := app.New()
	store := application.Store()
	platform.CreateWindow(store, "ECS ImGui Example", 1280, 720)

	// Register ImguiSystem and the inspector windows
	if _, err := debugui.Install(application); err != nil {
		panic(err)
	}

	// Entities with an ImguiItem render once per frame
	ecs.CreateComponent(store, store.Create(), debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})

	backend := debugui_ebiten.New("ECS ImGui Example", 1280, 720)
	if _, err := platform_ebiten.Run(application, platform_ebiten.WithOverlay(backend)); err != nil {
		panic(err)
	}
}
