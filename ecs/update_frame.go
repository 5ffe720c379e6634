package ecs

// UpdateFrame is handed to every system execution. DeltaTime is the fixed
// timestep during FixedUpdate and the frame delta in every other stage.
type UpdateFrame struct {
	DeltaTime float64
	Stage     Stage
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(dt float64, resources *Resources) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Resources: resources,
	}
}
