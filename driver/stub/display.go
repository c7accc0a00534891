//go:build !tinygo && !baremetal

package stub

import "sync"

// Display records the colours and brightness pushed by the lamp.
type Display struct {
	mu         sync.Mutex
	r, g, b    uint8
	brightness uint8
	shows      int
}

func NewDisplay() *Display {
	return &Display{brightness: 255}
}

func (d *Display) Fill(r, g, b uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.r, d.g, d.b = r, g, b
}

func (d *Display) Show() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shows++
	return nil
}

func (d *Display) SetBrightness(level uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.brightness = level
}

// Last returns the most recently filled colour.
func (d *Display) Last() (r, g, b uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.r, d.g, d.b
}

// Shows returns how many times the buffer was presented.
func (d *Display) Shows() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shows
}

func (d *Display) Brightness() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.brightness
}
