// Package debugui provides an optional Dear ImGui overlay for Fruit Drop.
// Panels are registered as ImguiItems and rendered by ImguiSystem, which runs
// in the world's Update stage between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fruitdrop/ecs"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// Panels is the singleton list of ImguiItems rendered every frame.
type Panels struct {
	Items []ImguiItem
}

// Add appends an item.
func (p *Panels) Add(item ImguiItem) {
	p.Items = append(p.Items, item)
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton component.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the ImguiInputState singleton and defers every panel's
// render function to the end of the stage.
type ImguiSystem struct {
	Panels     ecs.Singleton[Panels]
	InputState ecs.Singleton[ImguiInputState]
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	if state != nil {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	panels := i.Panels.Get()
	if panels == nil {
		return
	}
	for _, item := range panels.Items {
		frame.Commands.Defer(item.Render)
	}
}

// KeyboardCaptured reports whether ImGui currently owns the keyboard.
func KeyboardCaptured(resources *ecs.Resources) bool {
	state := ecs.ReadResource[ImguiInputState](resources)
	return state != nil && state.WantCaptureKeyboard
}
