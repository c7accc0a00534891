// Package animation evaluates keyframe records into momentary RGB
// colours and provides the preset record constructors used to provision
// a fresh device.
package animation

import "github.com/smomen/moodlamp/protocol"

// Clock returns milliseconds from a monotonic source.
type Clock func() uint32

// Engine plays one record at a time. The active record is replaced only
// through Install, always as a whole value copy, so Evaluate never
// observes a half-written record.
type Engine struct {
	record    protocol.Record
	reference uint32
	now       Clock
}

func New(now Clock) *Engine {
	return &Engine{now: now}
}

// Install makes rec the active record and restarts playback from the
// beginning of its cycle; no phase carries over from the previous record.
func (e *Engine) Install(rec protocol.Record) {
	e.record = rec
	e.reference = e.now()
}

// Record returns a copy of the active record.
func (e *Engine) Record() protocol.Record {
	return e.record
}

// Run evaluates the colour for the current instant and hands it to the
// display sink.
func (e *Engine) Run(sink func(r, g, b uint8)) {
	sink(e.Evaluate())
}

// Evaluate linearly interpolates between the two keyframes bracketing
// the elapsed cycle time. The sequence is treated as cyclic: below the
// first keyframe the previous cycle's final frame is the left bracket,
// and past the last keyframe frame 0 of the next cycle is the right one.
func (e *Engine) Evaluate() (r, g, b uint8) {
	rec := &e.record
	if rec.FrameCount == 0 {
		return 0, 0, 0
	}
	first := rec.Frames[0]
	if rec.FrameCount == 1 || rec.TotalTime == 0 {
		return first.Color[0], first.Color[1], first.Color[2]
	}

	elapsed := (e.now() - e.reference) % rec.TotalTime
	count := int(rec.FrameCount)

	prevIdx := -1
	for i := 0; i < count; i++ {
		if rec.Frames[i].Time <= elapsed {
			prevIdx = i
		} else {
			break
		}
	}

	var prev, next protocol.Frame
	var prevTime, nextTime int64
	if prevIdx < 0 {
		prev = rec.Frames[count-1]
		prevTime = int64(prev.Time) - int64(rec.TotalTime)
	} else {
		prev = rec.Frames[prevIdx]
		prevTime = int64(prev.Time)
	}
	if prevIdx+1 < count {
		next = rec.Frames[prevIdx+1]
		nextTime = int64(next.Time)
	} else {
		next = first
		nextTime = int64(rec.TotalTime) + int64(first.Time)
	}

	span := nextTime - prevTime
	if span <= 0 {
		return prev.Color[0], prev.Color[1], prev.Color[2]
	}
	pos := int64(elapsed) - prevTime

	return lerp(prev.Color[0], next.Color[0], pos, span),
		lerp(prev.Color[1], next.Color[1], pos, span),
		lerp(prev.Color[2], next.Color[2], pos, span)
}

// lerp interpolates one channel. 0 <= num <= den, so the result always
// lies between a and b inclusive.
func lerp(a, b uint8, num, den int64) uint8 {
	return uint8(int64(a) + (int64(b)-int64(a))*num/den)
}
