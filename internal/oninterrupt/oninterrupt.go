// Package oninterrupt runs registered cleanup handlers when the process
// receives SIGINT or SIGTERM, then exits.
package oninterrupt

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	mu       sync.Mutex
	handlers = make(map[int]func())
	next     int
	once     sync.Once
)

func listen() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-c
		mu.Lock()
		for _, f := range handlers {
			f()
		}
		mu.Unlock()
		if s, ok := sig.(syscall.Signal); ok {
			os.Exit(128 + int(s))
		}
		os.Exit(1)
	}()
}

// Register arranges for cb to be called on interrupt. The returned function
// removes cb again.
func Register(cb func()) (unregister func()) {
	once.Do(listen)
	mu.Lock()
	defer mu.Unlock()
	id := next
	next++
	handlers[id] = cb
	return func() {
		mu.Lock()
		defer mu.Unlock()
		delete(handlers, id)
	}
}
