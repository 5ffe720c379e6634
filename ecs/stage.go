package ecs

// Stage identifies when in a frame a system runs.
type Stage int

const (
	// Startup systems run once, before the first frame.
	Startup Stage = iota
	// PreUpdate systems run every frame before any fixed step.
	PreUpdate
	// FixedUpdate systems run zero or more times per frame at the fixed timestep.
	FixedUpdate
	// Update systems run every frame after the fixed steps.
	Update

	stageCount
)

func (s Stage) String() string {
	switch s {
	case Startup:
		return "Startup"
	case PreUpdate:
		return "PreUpdate"
	case FixedUpdate:
		return "FixedUpdate"
	case Update:
		return "Update"
	default:
		return "Unknown"
	}
}
