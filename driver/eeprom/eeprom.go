//go:build tinygo || baremetal

// Package eeprom wires the external AT24Cxx I2C EEPROM that holds the
// animation slots.
package eeprom

import (
	"machine"

	"tinygo.org/x/drivers/at24cx"
)

// New configures the I2C bus and returns the EEPROM device. The device
// implements io.ReaderAt and io.WriterAt, which is all the slot store
// needs.
func New(bus *machine.I2C, sda, scl machine.Pin) (*at24cx.Device, error) {
	if err := bus.Configure(machine.I2CConfig{SDA: sda, SCL: scl}); err != nil {
		return nil, err
	}
	dev := at24cx.New(bus)
	dev.Configure(at24cx.Config{})
	return &dev, nil
}
