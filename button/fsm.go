// Package button turns two momentary buttons into a debounced slot
// selector.
package button

// Pin reads a digital input. The lamp's buttons are wired active-low
// behind pull-ups, so a pressed button reads false.
type Pin interface {
	Get() bool
}

// DebounceTime is how long a button must stay held before a press
// counts, in milliseconds.
const DebounceTime = 200

type state uint8

const (
	stateIdle state = iota
	stateTriggered
	stateRelease
)

// FSM cycles a mode index through the slot range, one validated press
// at a time. A press only counts if the triggering button is still held
// when the debounce interval expires, and no new press is accepted
// until both buttons read released again.
type FSM struct {
	up    Pin
	down  Pin
	now   func() uint32
	modes int

	current  state
	changeUp bool
	timer    uint32
	mode     int
}

func NewFSM(up, down Pin, modes int, now func() uint32) *FSM {
	return &FSM{up: up, down: down, modes: modes, now: now}
}

// Mode returns the selected index without sampling the buttons.
func (f *FSM) Mode() int { return f.mode }

// Reset returns the machine to idle with slot 0 selected, as after a
// power cycle.
func (f *FSM) Reset() {
	f.current = stateIdle
	f.mode = 0
}

// Update samples both buttons once, advances the machine, and returns
// the selected mode index. The index changes only on a validated
// triggered-to-release transition and wraps in both directions.
func (f *FSM) Update() int {
	switch f.current {
	case stateIdle:
		if !f.up.Get() {
			f.current = stateTriggered
			f.changeUp = true
			f.timer = f.now()
		} else if !f.down.Get() {
			f.current = stateTriggered
			f.changeUp = false
			f.timer = f.now()
		}

	case stateTriggered:
		if f.now()-f.timer > DebounceTime {
			// Re-sample the triggering button: it must still be held at
			// the deadline for the press to count.
			if f.changeUp && !f.up.Get() {
				f.mode = (f.mode + 1) % f.modes
			} else if !f.changeUp && !f.down.Get() {
				if f.mode < 1 {
					f.mode = f.modes - 1
				} else {
					f.mode--
				}
			}
			f.current = stateRelease
		}

	case stateRelease:
		if f.up.Get() && f.down.Get() {
			f.current = stateIdle
		}
	}
	return f.mode
}
