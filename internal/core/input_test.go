package core

import "testing"

func TestKeyBusSubscribeAndUnsubscribe(t *testing.T) {
	bus := NewKeyBus()

	var got []string
	unsubA := bus.Subscribe(func(ev KeyEvent) { got = append(got, "a:"+ev.Key) })
	unsubB := bus.Subscribe(func(ev KeyEvent) { got = append(got, "b:"+ev.Key) })

	bus.Publish(KeyEvent{Key: "w"})
	if len(got) != 2 || got[0] != "a:w" || got[1] != "b:w" {
		t.Fatalf("Publish delivered %v, expected [a:w b:w]", got)
	}

	unsubA()
	unsubA() // second call is a no-op
	if bus.Len() != 1 {
		t.Fatalf("Len() = %d after unsubscribe, expected 1", bus.Len())
	}

	got = nil
	bus.Publish(KeyEvent{Key: "s"})
	if len(got) != 1 || got[0] != "b:s" {
		t.Errorf("Publish after unsubscribe delivered %v, expected [b:s]", got)
	}

	unsubB()
	if bus.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", bus.Len())
	}
}

func TestKeyBusUnsubscribeDuringPublish(t *testing.T) {
	bus := NewKeyBus()

	calls := 0
	var unsub func()
	unsub = bus.Subscribe(func(KeyEvent) {
		calls++
		unsub()
	})

	bus.Publish(KeyEvent{Key: "p"})
	bus.Publish(KeyEvent{Key: "p"})

	if calls != 1 {
		t.Errorf("handler called %d times, expected 1", calls)
	}
}

func TestKeyStateHoldWindow(t *testing.T) {
	bus := NewKeyBus()
	ks := NewKeyState(bus, 0.2)
	defer ks.Close()

	bus.Publish(KeyEvent{Key: "Up"})
	if !ks.Down("up") {
		t.Fatal("key should be held after press (case-insensitive)")
	}

	ks.Advance(0.15)
	if !ks.Down("up") {
		t.Fatal("key should still be held inside the window")
	}

	// Auto-repeat re-arms the window
	bus.Publish(KeyEvent{Key: "up"})
	ks.Advance(0.15)
	if !ks.Down("up") {
		t.Fatal("repeat press should re-arm the hold window")
	}

	ks.Advance(0.1)
	if ks.Down("up") {
		t.Error("key should expire once the window elapses")
	}
}

func TestKeyStateExplicitRelease(t *testing.T) {
	bus := NewKeyBus()
	ks := NewKeyState(bus, 0)

	bus.Publish(KeyEvent{Key: "a"})
	ks.Advance(10)
	if !ks.Down("left", "a") {
		t.Fatal("zero window should hold until release")
	}

	bus.Publish(KeyEvent{Key: "a", Released: true})
	if ks.Down("a") {
		t.Error("key should be up after release event")
	}

	ks.Close()
	if bus.Len() != 0 {
		t.Errorf("Close should unsubscribe, %d handlers left", bus.Len())
	}

	bus.Publish(KeyEvent{Key: "a"})
	if ks.Down("a") {
		t.Error("closed key state should ignore events")
	}
}

func TestKeyStateWithoutSource(t *testing.T) {
	ks := NewKeyState(nil, 0)
	ks.Press("d")
	if !ks.Down("d") {
		t.Error("Press should hold key without a source")
	}
	ks.ReleaseAll()
	if ks.Down("d") {
		t.Error("ReleaseAll should clear keys")
	}
	ks.Close() // no source, must not panic
}
