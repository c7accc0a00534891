//go:build !tinygo && !baremetal

package stub

import "sync"

// Pin is a digital input with a settable level. It idles high, matching
// the pull-up wiring of the lamp's active-low buttons.
type Pin struct {
	mu   sync.Mutex
	high bool
}

func NewPin() *Pin { return &Pin{high: true} }

func (p *Pin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.high
}

// Press drives the pin low.
func (p *Pin) Press() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.high = false
}

// Release lets the pull-up drive the pin high again.
func (p *Pin) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.high = true
}

// Knob is a brightness input with a settable level.
type Knob struct {
	mu    sync.Mutex
	level uint8
}

func NewKnob(level uint8) *Knob { return &Knob{level: level} }

func (k *Knob) Get() uint8 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.level
}

func (k *Knob) Set(level uint8) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.level = level
}
