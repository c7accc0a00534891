//go:build tinygo || baremetal

// Package neopixel drives a ws2812 strip as the lamp's display sink.
package neopixel

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// Strip fills every pixel with one colour, scaled by the current
// brightness, and pushes the whole buffer on Show.
type Strip struct {
	dev        ws2812.Device
	buf        []byte // GRB order, 3 bytes per pixel
	brightness uint8
}

func New(pin machine.Pin, pixels int) *Strip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &Strip{
		dev:        ws2812.New(pin),
		buf:        make([]byte, pixels*3),
		brightness: 255,
	}
}

func (s *Strip) SetBrightness(level uint8) {
	s.brightness = level
}

func (s *Strip) Fill(r, g, b uint8) {
	r = scale(r, s.brightness)
	g = scale(g, s.brightness)
	b = scale(b, s.brightness)
	for i := 0; i < len(s.buf); i += 3 {
		s.buf[i] = g
		s.buf[i+1] = r
		s.buf[i+2] = b
	}
}

func (s *Strip) Show() error {
	_, err := s.dev.Write(s.buf)
	return err
}

func scale(v, brightness uint8) uint8 {
	return uint8(uint16(v) * uint16(brightness) / 255)
}
