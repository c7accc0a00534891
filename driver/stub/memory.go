//go:build !tinygo && !baremetal

package stub

import (
	"errors"
	"sync"
)

var errOutOfRange = errors.New("offset out of range")

// Memory is a fixed-size byte store standing in for the EEPROM.
type Memory struct {
	mu  sync.Mutex
	buf []byte
}

func NewMemory(size int) *Memory {
	return &Memory{buf: make([]byte, size)}
}

func (m *Memory) ReadAt(p []byte, off int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if off < 0 || off+int64(len(p)) > int64(len(m.buf)) {
		return 0, errOutOfRange
	}
	return copy(p, m.buf[off:]), nil
}

func (m *Memory) WriteAt(p []byte, off int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if off < 0 || off+int64(len(p)) > int64(len(m.buf)) {
		return 0, errOutOfRange
	}
	return copy(m.buf[off:], p), nil
}

// Corrupt fills the whole store with the given byte, simulating an
// unprovisioned or damaged EEPROM.
func (m *Memory) Corrupt(v byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.buf {
		m.buf[i] = v
	}
}
