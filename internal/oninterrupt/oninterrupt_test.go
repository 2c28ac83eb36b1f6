package oninterrupt

import "testing"

func TestRegister(t *testing.T) {
	unregisterA := Register(func() {})
	unregisterB := Register(func() {})

	mu.Lock()
	n := len(handlers)
	mu.Unlock()
	if n != 2 {
		t.Fatalf("got %d handlers, want 2", n)
	}

	unregisterA()
	unregisterA() // idempotent
	unregisterB()

	mu.Lock()
	defer mu.Unlock()
	if len(handlers) != 0 {
		t.Fatalf("handlers not removed: %d left", len(handlers))
	}
}
