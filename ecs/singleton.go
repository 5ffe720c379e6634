package ecs

import "reflect"

// Singleton provides cached access to a single component instance
// that is not associated with any entity. Use this for global game state,
// configuration, or other singleton data.
type Singleton[T any] struct {
	resources     *Resources
	componentPtr  *T
	componentType reflect.Type
}

// NewSingleton creates a new Singleton accessor for the given resources.
// If initializer is provided and the singleton doesn't exist yet,
// it will be created with the initializer value. Otherwise, a zero value is used.
// This guarantees the singleton exists after the call.
func NewSingleton[T any](resources *Resources, initializer ...T) *Singleton[T] {
	componentType := reflect.TypeFor[T]()

	entry := resources.getSingletonEntry(componentType)
	if entry == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		resources.AddSingleton(&value)
		entry = resources.getSingletonEntry(componentType)
	}

	return &Singleton[T]{
		resources:     resources,
		componentPtr:  entry.ptr.Interface().(*T),
		componentType: componentType,
	}
}

// Init initializes the Singleton with a resources reference.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(resources *Resources) {
	s.resources = resources
	s.componentType = reflect.TypeFor[T]()
	s.componentPtr = nil
	s.updateCache()
}

// Get returns a pointer to the singleton component.
// Returns nil if the singleton has not been added yet.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	return s.componentPtr
}

// Exists returns true if the singleton component has been added
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

// updateCache refreshes the cached pointer from the resources
func (s *Singleton[T]) updateCache() {
	if s.resources == nil {
		return
	}
	entry := s.resources.getSingletonEntry(s.componentType)
	if entry != nil {
		s.componentPtr = entry.ptr.Interface().(*T)
	} else {
		s.componentPtr = nil
	}
}
