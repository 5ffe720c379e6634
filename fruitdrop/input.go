package fruitdrop

// Key is a logical game key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyRestart
	KeyQuit
)

// InputSource reports whether a logical key is currently held.
type InputSource interface {
	Pressed(key Key) bool
}

// NoInput never reports a pressed key.
type NoInput struct{}

// Pressed implements InputSource.
func (NoInput) Pressed(Key) bool { return false }

// KeySet is an InputSource backed by a fixed set of held keys.
type KeySet map[Key]bool

// Pressed implements InputSource.
func (k KeySet) Pressed(key Key) bool { return k[key] }
