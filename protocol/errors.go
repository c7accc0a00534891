package protocol

import "errors"

var (
	ErrPacketOverflow = errors.New("packet exceeds transfer capacity")
	ErrShortBuffer    = errors.New("buffer too short")
	ErrBadSlot        = errors.New("slot index out of range")
)
