//go:build !tinygo && !baremetal

package stub

import "sync"

// Clock is a manually advanced millisecond source.
type Clock struct {
	mu sync.Mutex
	ms uint32
}

func NewClock() *Clock { return &Clock{} }

func (c *Clock) Now() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ms
}

// Advance moves the clock forward by ms milliseconds.
func (c *Clock) Advance(ms uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ms += ms
}
