//go:build !tinygo && !baremetal

// This file is built only for non-embedded targets (host-based testing).
package moodlamp

import (
	"github.com/smomen/moodlamp/driver/stub"
	"github.com/smomen/moodlamp/protocol"
)

// HostRig is a lamp wired out of stub peripherals, with every
// peripheral exposed for inspection.
type HostRig struct {
	Lamp    *Lamp
	Link    *stub.Link
	Memory  *stub.Memory
	Display *stub.Display
	Knob    *stub.Knob
	Up      *stub.Pin
	Down    *stub.Pin
	Clock   *stub.Clock
}

func NewHostLamp() *HostRig {
	rig := &HostRig{
		Link:    stub.NewLink(),
		Memory:  stub.NewMemory(protocol.SlotCount * protocol.RecordSize),
		Display: stub.NewDisplay(),
		Knob:    stub.NewKnob(255),
		Up:      stub.NewPin(),
		Down:    stub.NewPin(),
		Clock:   stub.NewClock(),
	}
	rig.Lamp = New(Config{
		Link:       rig.Link,
		Memory:     rig.Memory,
		Display:    rig.Display,
		Brightness: rig.Knob,
		ButtonUp:   rig.Up,
		ButtonDown: rig.Down,
		Now:        rig.Clock.Now,
	})
	return rig
}
