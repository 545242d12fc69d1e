package core

import (
	"strings"
	"sync"
)

// KeyEvent is a single key transition delivered by the platform.
// Key uses Bubble Tea key names ("up", "w", " ", "enter", ...).
type KeyEvent struct {
	Key      string
	Released bool
}

// KeyHandler receives key events.
type KeyHandler func(KeyEvent)

// KeySource is anything games can register key handlers on.
// The returned function removes the registration.
type KeySource interface {
	Subscribe(h KeyHandler) (unsubscribe func())
}

// KeyBus is a KeySource the platform publishes key events to.
type KeyBus struct {
	mu       sync.Mutex
	nextID   int
	handlers []busEntry
}

type busEntry struct {
	id int
	h  KeyHandler
}

// NewKeyBus creates an empty key bus.
func NewKeyBus() *KeyBus {
	return &KeyBus{}
}

// Subscribe registers h. Handlers run in registration order.
// Calling the returned function more than once is harmless.
func (b *KeyBus) Subscribe(h KeyHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, busEntry{id: id, h: h})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *KeyBus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, e := range b.handlers {
		if e.id == id {
			b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every current subscriber.
// Handlers may unsubscribe while being called.
func (b *KeyBus) Publish(ev KeyEvent) {
	b.mu.Lock()
	snapshot := make([]busEntry, len(b.handlers))
	copy(snapshot, b.handlers)
	b.mu.Unlock()

	for _, e := range snapshot {
		e.h(ev)
	}
}

// Len returns the number of live subscriptions.
func (b *KeyBus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

// KeyState tracks which keys are currently held.
//
// Terminals report presses (and auto-repeats) but no releases, so every press
// keeps its key down for a hold window that Advance counts down. A repeat
// press re-arms the window. With a zero window keys stay down until an
// explicit release event.
type KeyState struct {
	hold        float64
	held        map[string]float64
	unsubscribe func()
}

// NewKeyState creates a key state fed by src. src may be nil, in which case
// keys are driven through Press and Release directly.
func NewKeyState(src KeySource, hold float64) *KeyState {
	k := &KeyState{
		hold: hold,
		held: make(map[string]float64),
	}
	if src != nil {
		k.unsubscribe = src.Subscribe(k.handle)
	}
	return k
}

func (k *KeyState) handle(ev KeyEvent) {
	if ev.Released {
		k.Release(ev.Key)
		return
	}
	k.Press(ev.Key)
}

// Press marks key as held.
func (k *KeyState) Press(key string) {
	k.held[normalizeKey(key)] = k.hold
}

// Release marks key as no longer held.
func (k *KeyState) Release(key string) {
	delete(k.held, normalizeKey(key))
}

// Down reports whether any of keys is held.
func (k *KeyState) Down(keys ...string) bool {
	for _, key := range keys {
		if _, ok := k.held[normalizeKey(key)]; ok {
			return true
		}
	}
	return false
}

// Advance counts hold windows down by dt seconds and drops expired keys.
func (k *KeyState) Advance(dt float64) {
	if k.hold <= 0 {
		return
	}
	for key, left := range k.held {
		left -= dt
		if left <= 0 {
			delete(k.held, key)
			continue
		}
		k.held[key] = left
	}
}

// ReleaseAll clears every held key.
func (k *KeyState) ReleaseAll() {
	clear(k.held)
}

// Close removes the subscription on the source.
func (k *KeyState) Close() {
	if k.unsubscribe != nil {
		k.unsubscribe()
		k.unsubscribe = nil
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(key)
}
