// Package protocol defines the animation record model and its byte
// representations: the serial upload/download layouts and the fixed-size
// storage envelope.
package protocol

import "encoding/binary"

// Frame is a single keyframe: the colour the strip must show exactly at
// Time milliseconds into the animation cycle. Time is an absolute offset
// from the cycle start, not a delta from the previous frame.
type Frame struct {
	Color [3]uint8 // R, G, B
	Time  uint32
}

// Record is a keyframe animation.
// Wire frame layout (upload and download share the same 7 bytes per frame):
//
//	+--------+--------+--------+---------------------+
//	|   R    |   G    |   B    | Time (big-endian)   |
//	+--------+--------+--------+---------------------+
//	| 1 byte | 1 byte | 1 byte |       4 bytes       |
//	+--------+--------+--------+---------------------+
//
// Frames are kept in upload order; nothing sorts them. TotalTime mirrors
// the last frame's Time and defines the loop period. The fixed-capacity
// array keeps Record a plain value, so replacing an active record is a
// single whole-struct copy.
type Record struct {
	FrameCount uint8
	Frames     [MaxFrames]Frame
	TotalTime  uint32
}

// DecodeUploadBuffer parses an upload packet:
// Slot(1) | FrameCount(1) | FrameCount x Frame(7).
// Returns ErrPacketOverflow when the declared frame count would not fit
// the transfer packet budget.
func DecodeUploadBuffer(buf []byte) (uint8, Record, error) {
	var rec Record
	if len(buf) < MetaSize {
		return 0, rec, ErrShortBuffer
	}
	slot := buf[0]
	count := int(buf[1])
	if count*FrameSize+MetaSize > PacketCapacity {
		return 0, rec, ErrPacketOverflow
	}
	if len(buf) < count*FrameSize+MetaSize {
		return 0, rec, ErrShortBuffer
	}

	rec.FrameCount = buf[1]
	for i := 0; i < count; i++ {
		base := MetaSize + i*FrameSize
		rec.Frames[i].Color[0] = buf[base]
		rec.Frames[i].Color[1] = buf[base+1]
		rec.Frames[i].Color[2] = buf[base+2]
		rec.Frames[i].Time = binary.BigEndian.Uint32(buf[base+3 : base+7])
	}
	if count > 0 {
		rec.TotalTime = rec.Frames[count-1].Time
	}
	return slot, rec, nil
}

// EncodeDownloadFrames serialises the record's frames without the
// slot/count header; the download protocol sends those two bytes
// separately.
func EncodeDownloadFrames(rec *Record) []byte {
	count := int(rec.FrameCount)
	if count > MaxFrames {
		count = MaxFrames
	}
	out := make([]byte, count*FrameSize)
	for i := 0; i < count; i++ {
		base := i * FrameSize
		out[base] = rec.Frames[i].Color[0]
		out[base+1] = rec.Frames[i].Color[1]
		out[base+2] = rec.Frames[i].Color[2]
		binary.BigEndian.PutUint32(out[base+3:base+7], rec.Frames[i].Time)
	}
	return out
}

// MarshalStorage renders the fixed storage envelope:
//
//	FrameCount(1) | TotalTime(4, BE) | MaxFrames x Frame(7) | padding
//
// Every frame slot is written regardless of FrameCount, so a record
// always occupies exactly RecordSize bytes.
func MarshalStorage(rec *Record) []byte {
	out := make([]byte, RecordSize)
	out[0] = rec.FrameCount
	binary.BigEndian.PutUint32(out[1:recordHeaderSize], rec.TotalTime)
	for i := 0; i < MaxFrames; i++ {
		base := recordHeaderSize + i*FrameSize
		out[base] = rec.Frames[i].Color[0]
		out[base+1] = rec.Frames[i].Color[1]
		out[base+2] = rec.Frames[i].Color[2]
		binary.BigEndian.PutUint32(out[base+3:base+7], rec.Frames[i].Time)
	}
	return out
}

// UnmarshalStorage reconstructs a record from a storage envelope. The
// contents are not validated beyond clamping FrameCount to capacity: an
// unprovisioned slot decodes to whatever its bytes happen to say.
func UnmarshalStorage(buf []byte) (Record, error) {
	var rec Record
	if len(buf) < RecordSize {
		return rec, ErrShortBuffer
	}
	rec.FrameCount = buf[0]
	if int(rec.FrameCount) > MaxFrames {
		rec.FrameCount = MaxFrames
	}
	rec.TotalTime = binary.BigEndian.Uint32(buf[1:recordHeaderSize])
	for i := 0; i < MaxFrames; i++ {
		base := recordHeaderSize + i*FrameSize
		rec.Frames[i].Color[0] = buf[base]
		rec.Frames[i].Color[1] = buf[base+1]
		rec.Frames[i].Color[2] = buf[base+2]
		rec.Frames[i].Time = binary.BigEndian.Uint32(buf[base+3 : base+7])
	}
	return rec, nil
}
