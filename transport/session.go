// Package transport implements the lock-step serial transfer protocol:
// intent token in, ready echo out, then an acknowledge-gated upload or
// download of animation records.
package transport

import (
	"log"
	"time"

	"github.com/smomen/moodlamp/protocol"
	"github.com/smomen/moodlamp/storage"
)

// Outcome reports how a session request ended. A restart outcome means
// an acknowledge failed mid-transfer; the protocol offers no per-step
// retry, only whole-device recovery, so the caller must reboot.
type Outcome int

const (
	OutcomeHandled Outcome = iota
	OutcomeRestart
)

// Milliseconds to wait for a complete intent token.
const tokenTimeout = 1000

// Session drives one serial exchange with the host. Its blocking waits
// poll the link against a wall-clock deadline, monopolising the control
// loop for the duration of a transfer.
type Session struct {
	link  Link
	store *storage.Store
	now   func() uint32
}

func NewSession(link Link, store *storage.Store, now func() uint32) *Session {
	return &Session{link: link, store: store, now: now}
}

// Handle services one host request and blocks until the exchange
// completes, is rejected, or fails hard enough to demand a restart.
func (s *Session) Handle() Outcome {
	token := s.readToken()
	s.writeLine("ready_" + token)

	if len(token) == 0 {
		s.writeLine("")
		return OutcomeHandled
	}
	switch token[0] {
	case '0', '1', '2', '3', '4', '5':
		return s.handleUpload()
	case protocol.IntentDownload:
		return s.handleDownload()
	default:
		// Unrecognised intent: empty reply, no state change.
		s.writeLine("")
		return OutcomeHandled
	}
}

// handleUpload receives one animation packet, echoes it back verbatim
// for the host to verify, and persists it only after a positive
// acknowledge.
func (s *Session) handleUpload() Outcome {
	var buf [protocol.PacketCapacity]byte

	// Meta bytes first: target slot and frame count.
	for i := 0; i < protocol.MetaSize; i++ {
		buf[i] = s.readBlocking()
	}

	total := int(buf[1])*protocol.FrameSize + protocol.MetaSize
	count := protocol.MetaSize
	for count < total {
		if count >= len(buf) {
			// The next byte would overflow the packet buffer: reject the
			// transfer and stay alive.
			s.writeLine("")
			return OutcomeHandled
		}
		buf[count] = s.readBlocking()
		count++
	}

	// Byte-exact round trip so the host can verify what arrived.
	s.link.Write(buf[:count])

	if !s.waitForAck(protocol.AckTimeout) {
		return OutcomeRestart
	}

	slot, rec, err := protocol.DecodeUploadBuffer(buf[:count])
	if err != nil {
		log.Printf("[Session] upload decode failed: %v\r\n", err)
		s.writeLine("")
		return OutcomeHandled
	}
	if err := s.store.Save(int(slot), &rec); err != nil {
		log.Printf("[Session] slot %d save failed: %v\r\n", slot, err)
		s.writeLine("")
		return OutcomeHandled
	}
	s.writeLine("Done")
	return OutcomeHandled
}

// handleDownload dumps all six slots, three acknowledge round-trips per
// slot: one before the header, one before the frames, one after.
func (s *Session) handleDownload() Outcome {
	for i := 0; i < protocol.SlotCount; i++ {
		rec, err := s.store.Load(i)
		if err != nil {
			log.Printf("[Session] slot %d load failed: %v\r\n", i, err)
			return OutcomeRestart
		}
		if !s.waitForAck(protocol.AckTimeout) {
			return OutcomeRestart
		}
		s.link.Write([]byte{byte(i), rec.FrameCount})
		if !s.waitForAck(protocol.AckTimeout) {
			return OutcomeRestart
		}
		s.link.Write(protocol.EncodeDownloadFrames(&rec))
		if !s.waitForAck(protocol.AckTimeout) {
			return OutcomeRestart
		}
	}
	return OutcomeHandled
}

// waitForAck polls for the host's acknowledge byte until the deadline.
// Anything other than AckOK, or silence past the timeout, is a failure.
func (s *Session) waitForAck(timeoutMs uint32) bool {
	start := s.now()
	for {
		if s.link.Buffered() > 0 {
			ack, err := s.link.ReadByte()
			if err == nil && ack == protocol.AckOK {
				return true
			}
			s.writeLine("ACK Fail")
			return false
		}
		if s.now()-start > timeoutMs {
			s.writeLine("ACK Fail")
			return false
		}
		time.Sleep(time.Millisecond)
	}
}

// readToken collects the intent token up to its '-' terminator. On the
// deadline it returns whatever arrived, mirroring a terminated read on
// the original serial line.
func (s *Session) readToken() string {
	var tok []byte
	start := s.now()
	for {
		if s.link.Buffered() > 0 {
			c, err := s.link.ReadByte()
			if err == nil {
				if c == protocol.IntentTerminator {
					return string(tok)
				}
				tok = append(tok, c)
				continue
			}
		}
		if s.now()-start > tokenTimeout {
			return string(tok)
		}
		time.Sleep(time.Millisecond)
	}
}

// readBlocking waits indefinitely for the next byte; mid-packet the
// protocol has no timeout, matching the device's original behaviour.
func (s *Session) readBlocking() byte {
	for {
		if s.link.Buffered() > 0 {
			if c, err := s.link.ReadByte(); err == nil {
				return c
			}
		}
		time.Sleep(time.Millisecond)
	}
}

func (s *Session) writeLine(text string) {
	s.link.Write(append([]byte(text), '\r', '\n'))
}
