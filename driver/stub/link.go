//go:build !tinygo && !baremetal

// Package stub provides in-memory peripherals for host-side testing:
// serial link, slot memory, display sink, buttons, brightness knob and a
// manually advanced clock.
package stub

import (
	"errors"
	"sync"
)

var errNoData = errors.New("no data buffered")

// Link is a mock serial connection. Host-to-device bytes are queued with
// InjectRx; device-to-host writes are captured call by call.
type Link struct {
	mu sync.Mutex
	rx []byte
	tx [][]byte
}

func NewLink() *Link { return &Link{} }

func (l *Link) Buffered() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.rx)
}

func (l *Link) ReadByte() (byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.rx) == 0 {
		return 0, errNoData
	}
	b := l.rx[0]
	l.rx = l.rx[1:]
	return b, nil
}

func (l *Link) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]byte, len(p))
	copy(out, p)
	l.tx = append(l.tx, out)
	return len(p), nil
}

func (l *Link) WriteByte(b byte) error {
	_, err := l.Write([]byte{b})
	return err
}

// InjectRx queues bytes for the device side to read.
func (l *Link) InjectRx(data []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rx = append(l.rx, data...)
}

// TxLog returns a copy of every Write call so far, in order.
func (l *Link) TxLog() [][]byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([][]byte, len(l.tx))
	for i, frame := range l.tx {
		cp := make([]byte, len(frame))
		copy(cp, frame)
		out[i] = cp
	}
	return out
}

// TxBytes returns the flattened device-to-host stream.
func (l *Link) TxBytes() []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []byte
	for _, frame := range l.tx {
		out = append(out, frame...)
	}
	return out
}
