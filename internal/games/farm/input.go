package farm

import (
	"strings"

	"github.com/vovakirdan/crop-rush/internal/core"
)

// Key bindings. Names follow Bubble Tea key strings.
var (
	KeysUp    = []string{"up", "w"}
	KeysDown  = []string{"down", "s"}
	KeysLeft  = []string{"left", "a"}
	KeysRight = []string{"right", "d"}
	KeysPause = []string{"p"}
	KeysStart = []string{"enter", " ", "space"}
	KeysReset = []string{"r"}
)

// Commands are the one-shot actions bound to keys.
type Commands struct {
	Start       func()
	TogglePause func()
	Reset       func()
}

// Input turns key events from a source into held movement keys and
// command callbacks. Every registration it makes is undone by Dispose.
type Input struct {
	keys        *core.KeyState
	cmds        Commands
	unsubscribe func()
}

// NewInput registers on src. hold is the held-key window in seconds.
func NewInput(src core.KeySource, hold float64, cmds Commands) *Input {
	in := &Input{
		keys: core.NewKeyState(src, hold),
		cmds: cmds,
	}
	if src != nil {
		in.unsubscribe = src.Subscribe(in.onKey)
	}
	return in
}

func (in *Input) onKey(ev core.KeyEvent) {
	if ev.Released {
		return
	}
	key := strings.ToLower(ev.Key)
	switch {
	case matches(key, KeysPause):
		call(in.cmds.TogglePause)
	case matches(key, KeysStart):
		call(in.cmds.Start)
	case matches(key, KeysReset):
		call(in.cmds.Reset)
	}
}

// Axis returns the raw movement direction from held keys.
func (in *Input) Axis() core.Vec {
	var v core.Vec
	if in.keys.Down(KeysUp...) {
		v.Y--
	}
	if in.keys.Down(KeysDown...) {
		v.Y++
	}
	if in.keys.Down(KeysLeft...) {
		v.X--
	}
	if in.keys.Down(KeysRight...) {
		v.X++
	}
	return v
}

// Advance expires held keys.
func (in *Input) Advance(dt float64) {
	in.keys.Advance(dt)
}

// ReleaseAll drops every held key.
func (in *Input) ReleaseAll() {
	in.keys.ReleaseAll()
}

// Dispose removes all registrations from the source. Safe to call twice.
func (in *Input) Dispose() {
	in.keys.Close()
	if in.unsubscribe != nil {
		in.unsubscribe()
		in.unsubscribe = nil
	}
}

func matches(key string, keys []string) bool {
	for _, k := range keys {
		if key == k {
			return true
		}
	}
	return false
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
