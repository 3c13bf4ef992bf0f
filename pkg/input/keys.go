package input

import "sync"

// Key names as reported by the input source
const (
	ArrowLeft  = "ArrowLeft"
	ArrowRight = "ArrowRight"
	ArrowUp    = "ArrowUp"
	ArrowDown  = "ArrowDown"
	KeyW       = "w"
	KeyA       = "a"
	KeyS       = "s"
	KeyD       = "d"
	Shift      = "Shift"
	Space      = " "
	Escape     = "Escape"
)

// Keys is a read-only view of the keys held during one tick
type Keys interface {
	Held(key string) bool
}

// Source delivers the currently held keys at the start of a tick
type Source interface {
	Snapshot() Keys
}

// Snapshot is an immutable copy of a held-key set
type Snapshot map[string]bool

// Held reports whether key was down when the snapshot was taken
func (s Snapshot) Held(key string) bool {
	return s[key]
}

// KeySet tracks held keys. Press/Release may be called from an event
// goroutine while the tick goroutine takes snapshots.
type KeySet struct {
	mu   sync.Mutex
	held map[string]bool
}

// NewKeySet creates an empty key set
func NewKeySet() *KeySet {
	return &KeySet{held: make(map[string]bool)}
}

// Press marks key as held
func (k *KeySet) Press(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[key] = true
}

// Release marks key as no longer held
func (k *KeySet) Release(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, key)
}

// Set replaces the held keys with exactly the given ones
func (k *KeySet) Set(keys ...string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.held)
	for _, key := range keys {
		k.held[key] = true
	}
}

// Snapshot copies the held keys
func (k *KeySet) Snapshot() Keys {
	k.mu.Lock()
	defer k.mu.Unlock()
	s := make(Snapshot, len(k.held))
	for key := range k.held {
		s[key] = true
	}
	return s
}
