package moodlamp

import (
	"github.com/smomen/moodlamp/animation"
	"github.com/smomen/moodlamp/protocol"
)

// DefaultAnimations is the provisioning table written to a fresh
// device: solid white, solid red, breathing white, solid green, rainbow,
// solid blue.
func DefaultAnimations() [protocol.SlotCount]protocol.Record {
	return [protocol.SlotCount]protocol.Record{
		animation.SolidColor(255, 255, 255),
		animation.SolidColor(255, 0, 0),
		animation.BreatheColor(255, 255, 255, 3000),
		animation.SolidColor(0, 255, 0),
		animation.Rainbow(4000),
		animation.SolidColor(0, 0, 255),
	}
}
