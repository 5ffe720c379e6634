package ecs

import (
	"reflect"
	"sort"
)

// Resources holds the singleton components of a world. Each type is stored
// at most once and its address never changes once added, so cached pointers
// held by Singleton accessors stay valid for the lifetime of the Resources.
type Resources struct {
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	ptr reflect.Value
}

// ResourceStats summarises the contents of a Resources instance.
type ResourceStats struct {
	SingletonCount int
	SingletonTypes []string
}

// NewResources creates an empty resource set.
func NewResources() *Resources {
	return &Resources{
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// AddSingleton stores a singleton component. Passing a pointer stores the
// pointed-to value in place; passing a value stores a copy.
// If a singleton of the same type already exists its contents are
// overwritten, keeping previously handed out pointers valid.
func (r *Resources) AddSingleton(component any) {
	if component == nil {
		panic("cannot add nil singleton")
	}

	value := reflect.ValueOf(component)
	ptr := value
	if value.Kind() != reflect.Ptr {
		ptr = reflect.New(value.Type())
		ptr.Elem().Set(value)
	} else if value.IsNil() {
		panic("cannot add nil singleton pointer of type " + value.Type().String())
	}

	componentType := ptr.Type().Elem()
	if existing, ok := r.singletons[componentType]; ok {
		existing.ptr.Elem().Set(ptr.Elem())
		return
	}

	r.singletons[componentType] = &singletonEntry{ptr: ptr}
}

// ReadSingleton fills target, which must be a pointer to a pointer
// (e.g. *(*GameConfig)), with the stored singleton of that type.
// Returns false if no such singleton exists.
func (r *Resources) ReadSingleton(target any) bool {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	entry := r.singletons[targetValue.Elem().Type().Elem()]
	if entry == nil {
		return false
	}

	targetValue.Elem().Set(entry.ptr)
	return true
}

// HasSingleton reports whether a singleton of the given type is stored.
func (r *Resources) HasSingleton(componentType reflect.Type) bool {
	_, ok := r.singletons[componentType]
	return ok
}

// CollectStats returns the number and type names of stored singletons.
func (r *Resources) CollectStats() ResourceStats {
	stats := ResourceStats{
		SingletonCount: len(r.singletons),
		SingletonTypes: make([]string, 0, len(r.singletons)),
	}
	for typ := range r.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)
	return stats
}

func (r *Resources) getSingletonEntry(componentType reflect.Type) *singletonEntry {
	return r.singletons[componentType]
}

// ReadResource returns the singleton of type T, or nil if it has not been added.
func ReadResource[T any](r *Resources) *T {
	entry := r.getSingletonEntry(reflect.TypeFor[T]())
	if entry == nil {
		return nil
	}
	return entry.ptr.Interface().(*T)
}
