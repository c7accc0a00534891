package protocol

// Wire and storage sizing constants. All higher layers depend on this file.
const (
	// Upload packet layout:
	//   Slot (1) | FrameCount (1) | FrameCount x Frame (7 bytes each)
	// A full packet never exceeds PacketCapacity bytes, which bounds the
	// receive buffer on the device.
	PacketCapacity = 142
	MetaSize       = 2
	FrameSize      = 7

	// MaxFrames is the record capacity implied by the packet budget.
	MaxFrames = (PacketCapacity - MetaSize) / FrameSize

	// Records are padded to a fixed envelope in persistent storage so a
	// slot's byte offset is always slot*RecordSize.
	RecordSize = 168

	// Slots available in persistent storage. Slot 0 is the boot default.
	SlotCount = 6

	// Transfer handshake.
	AckOK            = 0xFF
	AckTimeout       = 1000 // milliseconds
	IntentTerminator = '-'
	IntentDownload   = 'd'

	// internal helper: FrameCount(1) + TotalTime(4) before the frames
	recordHeaderSize = 5
)
