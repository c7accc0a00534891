package transport

// Link is the byte-stream connection to the host. *machine.UART
// satisfies it directly on hardware; tests use driver/stub.Link.
type Link interface {
	Buffered() int
	ReadByte() (byte, error)
	Write(p []byte) (n int, err error)
	WriteByte(b byte) error
}
