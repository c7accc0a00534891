// Package moodlamp ties the keyframe animation engine, the slot
// storage, the serial transfer protocol and the button selector together
// into one serial-controlled lamp.
package moodlamp

import (
	"github.com/smomen/moodlamp/animation"
	"github.com/smomen/moodlamp/button"
	"github.com/smomen/moodlamp/protocol"
	"github.com/smomen/moodlamp/transport"
)

// The actual wiring is split into build-tag specific files:
// - constructors_device.go - for embedded targets (//go:build tinygo || baremetal)
// - constructors_host.go - for development/testing (//go:build !tinygo && !baremetal)

// Re-export the types host applications and device mains touch most.
type (
	Frame   = protocol.Frame
	Record  = protocol.Record
	Link    = transport.Link
	Outcome = transport.Outcome
	Pin     = button.Pin
	Clock   = animation.Clock
)

// Constants exposed in the public API.
const (
	SlotCount      = protocol.SlotCount
	MaxFrames      = protocol.MaxFrames
	RecordSize     = protocol.RecordSize
	PacketCapacity = protocol.PacketCapacity
	AckOK          = protocol.AckOK

	OutcomeHandled = transport.OutcomeHandled
	OutcomeRestart = transport.OutcomeRestart
)

// Error values exposed in the public API.
var (
	ErrPacketOverflow = protocol.ErrPacketOverflow
	ErrBadSlot        = protocol.ErrBadSlot
)
