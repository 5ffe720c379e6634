package ecs

// System represents a behavior that operates on world state.
// User-defined systems should implement this interface and can include Singleton
// fields for accessing resources, as well as custom state fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// Condition decides whether a system runs in the current frame.
type Condition func(frame *UpdateFrame) bool

// OnTimer returns a Condition that is true once every interval seconds of
// accumulated frame time. It fires at most once per frame.
func OnTimer(interval float64) Condition {
	timer := NewTimer(interval)
	return func(frame *UpdateFrame) bool {
		return timer.Tick(frame.DeltaTime)
	}
}
