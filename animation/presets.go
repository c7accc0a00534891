package animation

import "github.com/smomen/moodlamp/protocol"

// Preset constructors. Each returns a record in the same shape an
// uploaded animation would have, so presets and uploads are
// interchangeable in storage.

// SolidColor holds one colour forever.
func SolidColor(r, g, b uint8) protocol.Record {
	var rec protocol.Record
	rec.FrameCount = 1
	rec.Frames[0] = protocol.Frame{Color: [3]uint8{r, g, b}}
	return rec
}

// BreatheColor ramps the colour between near-off and full intensity,
// producing a triangle-wave brightness envelope once per periodMs.
func BreatheColor(r, g, b uint8, periodMs uint32) protocol.Record {
	var rec protocol.Record
	dim := [3]uint8{r / 16, g / 16, b / 16}
	rec.FrameCount = 3
	rec.Frames[0] = protocol.Frame{Color: dim, Time: 0}
	rec.Frames[1] = protocol.Frame{Color: [3]uint8{r, g, b}, Time: periodMs / 2}
	rec.Frames[2] = protocol.Frame{Color: dim, Time: periodMs}
	rec.TotalTime = periodMs
	return rec
}

// Rainbow sweeps the hue wheel once per periodMs. The final frame
// repeats the starting colour at the full period so the loop closes
// without a seam.
func Rainbow(periodMs uint32) protocol.Record {
	const segments = 6
	var rec protocol.Record
	rec.FrameCount = segments + 1
	for i := 0; i <= segments; i++ {
		r, g, b := wheel(uint8(uint32(i%segments) * 255 / segments))
		rec.Frames[i] = protocol.Frame{
			Color: [3]uint8{r, g, b},
			Time:  uint32(i) * periodMs / segments,
		}
	}
	rec.TotalTime = periodMs
	return rec
}

// wheel maps 0-255 onto the hue circle: red -> green -> blue -> red.
func wheel(pos uint8) (r, g, b uint8) {
	switch {
	case pos < 85:
		return 255 - pos*3, pos * 3, 0
	case pos < 170:
		pos -= 85
		return 0, 255 - pos*3, pos * 3
	default:
		pos -= 170
		return pos * 3, 0, 255 - pos*3
	}
}
