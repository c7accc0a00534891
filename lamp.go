package moodlamp

import (
	"errors"

	"github.com/smomen/moodlamp/animation"
	"github.com/smomen/moodlamp/button"
	"github.com/smomen/moodlamp/storage"
	"github.com/smomen/moodlamp/transport"
)

// ErrRestartRequested is returned by Run when a transfer failed in a
// way only a full device reset recovers from. The caller owns the
// actual reset.
var ErrRestartRequested = errors.New("device restart requested")

// BrightnessThreshold is the minimum knob movement that updates the
// display, filtering ADC jitter.
const BrightnessThreshold = 20

// Display is the lamp's output sink: fill every pixel with one colour,
// then present the buffer.
type Display interface {
	Fill(r, g, b uint8)
	Show() error
	SetBrightness(level uint8)
}

// BrightnessInput reads the brightness knob, already scaled to 0-255.
type BrightnessInput interface {
	Get() uint8
}

// Config collects the peripherals a Lamp runs on.
type Config struct {
	Link       transport.Link
	Memory     storage.Memory
	Display    Display
	Brightness BrightnessInput // optional
	ButtonUp   button.Pin
	ButtonDown button.Pin
	Now        func() uint32
}

// Lamp is the whole device: a single control loop that alternates
// between servicing the serial link and driving playback. The two
// halves never run concurrently, so a transfer visibly pauses the
// animation.
type Lamp struct {
	link    transport.Link
	session *transport.Session
	store   *storage.Store
	engine  *animation.Engine
	fsm     *button.FSM
	display Display
	knob    BrightnessInput

	mode      int
	lastLevel uint8
}

func New(cfg Config) *Lamp {
	store := storage.New(cfg.Memory)
	return &Lamp{
		link:    cfg.Link,
		session: transport.NewSession(cfg.Link, store, cfg.Now),
		store:   store,
		engine:  animation.New(cfg.Now),
		fsm:     button.NewFSM(cfg.ButtonUp, cfg.ButtonDown, SlotCount, cfg.Now),
		display: cfg.Display,
		knob:    cfg.Brightness,
	}
}

// Provision writes the default animation table to every slot. Meant to
// run once on a fresh device so no slot is ever read unprovisioned.
func (l *Lamp) Provision() error {
	defaults := DefaultAnimations()
	return l.store.WriteDefaults(&defaults)
}

// Boot announces the device on the serial link and installs the
// power-on animation from slot 0. Booting discards any volatile state a
// previous run left behind, so a restart after a failed transfer comes
// up exactly like a power cycle.
func (l *Lamp) Boot() {
	l.mode = 0
	l.fsm.Reset()
	l.link.Write([]byte("ready\r\n"))
	if l.knob != nil {
		l.lastLevel = l.knob.Get()
		l.display.SetBrightness(l.lastLevel)
	}
	l.installSlot(l.mode)
}

// Step runs one control-loop iteration: the serial link when input is
// pending, otherwise brightness, buttons and playback.
func (l *Lamp) Step() error {
	if l.link.Buffered() > 0 {
		if l.session.Handle() == transport.OutcomeRestart {
			return ErrRestartRequested
		}
		// An upload may have replaced the record currently in view.
		l.installSlot(l.mode)
		return nil
	}

	if l.knob != nil {
		level := l.knob.Get()
		if absDiff(level, l.lastLevel) > BrightnessThreshold {
			l.display.SetBrightness(level)
			l.lastLevel = level
		}
	}

	if mode := l.fsm.Update(); mode != l.mode {
		l.mode = mode
		l.installSlot(mode)
	}

	l.engine.Run(func(r, g, b uint8) {
		l.display.Fill(r, g, b)
		_ = l.display.Show()
	})
	return nil
}

// Run boots the lamp and steps forever, returning only when a transfer
// failure demands a device reset.
func (l *Lamp) Run() error {
	l.Boot()
	for {
		if err := l.Step(); err != nil {
			return err
		}
	}
}

// Mode returns the slot currently selected for playback.
func (l *Lamp) Mode() int { return l.mode }

func (l *Lamp) installSlot(slot int) {
	rec, err := l.store.Load(slot)
	if err != nil {
		return
	}
	l.engine.Install(rec)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
