//go:build tinygo || baremetal

// This file is built only for embedded targets (real peripherals).
package moodlamp

import (
	"machine"
	"time"

	"github.com/smomen/moodlamp/driver/eeprom"
	"github.com/smomen/moodlamp/driver/neopixel"
)

// Pins collects the board wiring for NewDeviceLamp.
type Pins struct {
	Pixel      machine.Pin
	ButtonUp   machine.Pin
	ButtonDown machine.Pin
	Pot        machine.Pin
	SDA        machine.Pin
	SCL        machine.Pin
}

// NewDeviceLamp wires a lamp onto real hardware: ws2812 strip, AT24Cxx
// EEPROM, two pull-up buttons and the brightness pot.
func NewDeviceLamp(uart *machine.UART, pins Pins, pixels int) (*Lamp, error) {
	mem, err := eeprom.New(machine.I2C0, pins.SDA, pins.SCL)
	if err != nil {
		return nil, err
	}

	pins.ButtonUp.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pins.ButtonDown.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	machine.InitADC()
	pot := newPot(pins.Pot)

	return New(Config{
		Link:       uart,
		Memory:     mem,
		Display:    neopixel.New(pins.Pixel, pixels),
		Brightness: pot,
		ButtonUp:   pins.ButtonUp,
		ButtonDown: pins.ButtonDown,
		Now:        millis,
	}), nil
}

// pot maps the brightness potentiometer onto the 0-255 display range.
type pot struct {
	adc machine.ADC
}

func newPot(pin machine.Pin) *pot {
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	return &pot{adc: adc}
}

func (p *pot) Get() uint8 {
	return uint8(p.adc.Get() >> 8)
}

var bootTime = time.Now()

func millis() uint32 {
	return uint32(time.Since(bootTime) / time.Millisecond)
}
