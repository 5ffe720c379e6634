package ecs

// Time is a singleton maintained by the Scheduler. Systems can read it to
// learn about frame pacing.
type Time struct {
	Frame        uint64
	Delta        float64
	Elapsed      float64
	FixedDelta   float64
	FixedSteps   uint64
	FixedElapsed float64
	// Overstep is the accumulated time not yet consumed by a fixed step.
	Overstep float64
}
