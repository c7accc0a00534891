// Package storage persists animation records in six fixed slots of a
// byte-addressable memory.
package storage

import (
	"io"

	"github.com/smomen/moodlamp/protocol"
)

// Memory is the persistence contract: absolute reads and writes into a
// byte-addressable device. The at24cx EEPROM driver satisfies it on
// hardware; tests use an in-memory implementation.
type Memory interface {
	io.ReaderAt
	io.WriterAt
}

// Store maps slot indices to fixed offsets in a Memory. A slot's record
// lives at slot*RecordSize; slots are overwritten in place.
type Store struct {
	mem Memory
}

func New(mem Memory) *Store {
	return &Store{mem: mem}
}

// Load reads the record in the given slot. Slot contents are not
// validated: garbage bytes decode to a garbage record, which is why a
// fresh device is provisioned with WriteDefaults before first use.
func (s *Store) Load(slot int) (protocol.Record, error) {
	if slot < 0 || slot >= protocol.SlotCount {
		return protocol.Record{}, protocol.ErrBadSlot
	}
	buf := make([]byte, protocol.RecordSize)
	if _, err := s.mem.ReadAt(buf, int64(slot)*protocol.RecordSize); err != nil {
		return protocol.Record{}, err
	}
	return protocol.UnmarshalStorage(buf)
}

// Save writes the record into the given slot, overwriting any prior
// content.
func (s *Store) Save(slot int, rec *protocol.Record) error {
	if slot < 0 || slot >= protocol.SlotCount {
		return protocol.ErrBadSlot
	}
	_, err := s.mem.WriteAt(protocol.MarshalStorage(rec), int64(slot)*protocol.RecordSize)
	return err
}

// WriteDefaults provisions every slot from the given table.
func (s *Store) WriteDefaults(defaults *[protocol.SlotCount]protocol.Record) error {
	for i := range defaults {
		if err := s.Save(i, &defaults[i]); err != nil {
			return err
		}
	}
	return nil
}
