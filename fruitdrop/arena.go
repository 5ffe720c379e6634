package fruitdrop

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// FruitArena stores live fruit densely and indexes them by stable FruitID.
// Removal swaps the last fruit into the freed slot, so iteration order is
// not preserved across removals.
type FruitArena struct {
	fruits []Fruit
	index  *intmap.Map[FruitID, int]
	nextID FruitID
}

// NewFruitArena creates an empty arena.
func NewFruitArena() *FruitArena {
	return &FruitArena{
		index:  intmap.New[FruitID, int](64),
		nextID: 1,
	}
}

// Spawn adds a fruit and returns its id.
func (a *FruitArena) Spawn(pos Vec3, variant int, size float64) FruitID {
	id := a.nextID
	a.nextID++

	a.index.Put(id, len(a.fruits))
	a.fruits = append(a.fruits, Fruit{
		ID:       id,
		Position: pos,
		Variant:  variant,
		Size:     size,
	})
	return id
}

// Despawn removes the fruit with the given id. It returns false if no such
// fruit is alive.
func (a *FruitArena) Despawn(id FruitID) bool {
	slot, ok := a.index.Get(id)
	if !ok {
		return false
	}

	last := len(a.fruits) - 1
	if slot != last {
		a.fruits[slot] = a.fruits[last]
		a.index.Put(a.fruits[slot].ID, slot)
	}
	a.fruits[last] = Fruit{}
	a.fruits = a.fruits[:last]
	a.index.Del(id)
	return true
}

// Get returns a pointer to the fruit with the given id. The pointer is only
// valid until the next Spawn or Despawn.
func (a *FruitArena) Get(id FruitID) (*Fruit, bool) {
	slot, ok := a.index.Get(id)
	if !ok {
		return nil, false
	}
	return &a.fruits[slot], true
}

// Len returns the number of live fruit.
func (a *FruitArena) Len() int {
	return len(a.fruits)
}

// All iterates over live fruit. The arena must not be modified during iteration.
func (a *FruitArena) All() iter.Seq[*Fruit] {
	return func(yield func(*Fruit) bool) {
		for i := range a.fruits {
			if !yield(&a.fruits[i]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of every live fruit.
func (a *FruitArena) Snapshot() []Fruit {
	out := make([]Fruit, len(a.fruits))
	copy(out, a.fruits)
	return out
}

// Reset removes every fruit. Ids keep increasing so stale ids never match.
func (a *FruitArena) Reset() {
	clear(a.fruits)
	a.fruits = a.fruits[:0]
	a.index.Clear()
}
