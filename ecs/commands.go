package ecs

// Commands provides a buffer for deferred operations that are executed at the
// end of a stage. This prevents systems from swapping out resources that later
// systems of the same stage are still reading.
type Commands struct {
	inserts []insertCommand
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type insertCommand struct {
	component any
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Insert queues the addition (or overwrite) of a singleton component.
func (c *Commands) Insert(component any) {
	c.inserts = append(c.inserts, insertCommand{component: component})
}

// Pending reports how many operations are queued.
func (c *Commands) Pending() int {
	return len(c.inserts) + len(c.defers)
}

// Flush applies all queued commands to the provided resources, resetting the buffer state.
// Inserts are applied before deferred functions.
func (c *Commands) Flush(resources *Resources) {
	for _, cmd := range c.inserts {
		resources.AddSingleton(cmd.component)
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.inserts = c.inserts[:0]
	c.defers = c.defers[:0]
}
