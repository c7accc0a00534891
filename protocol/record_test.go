package protocol

import (
	"bytes"
	"testing"
)

func TestDecodeUploadBuffer(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		wantSlot uint8
		want     Record
		wantErr  error
	}{
		{
			name:     "single frame",
			buf:      []byte{2, 1, 10, 20, 30, 0x00, 0x00, 0x00, 0x00},
			wantSlot: 2,
			want: Record{
				FrameCount: 1,
				Frames: [MaxFrames]Frame{
					{Color: [3]uint8{10, 20, 30}, Time: 0},
				},
				TotalTime: 0,
			},
		},
		{
			name: "two frames big-endian time",
			buf: []byte{
				5, 2,
				255, 0, 0, 0x00, 0x00, 0x01, 0x02,
				0, 0, 255, 0x00, 0x00, 0x03, 0xE8,
			},
			wantSlot: 5,
			want: Record{
				FrameCount: 2,
				Frames: [MaxFrames]Frame{
					{Color: [3]uint8{255, 0, 0}, Time: 0x0102},
					{Color: [3]uint8{0, 0, 255}, Time: 1000},
				},
				TotalTime: 1000,
			},
		},
		{
			name:    "frame count beyond packet budget",
			buf:     []byte{0, MaxFrames + 1},
			wantErr: ErrPacketOverflow,
		},
		{
			name:    "truncated payload",
			buf:     []byte{0, 2, 1, 2, 3, 0, 0, 0, 0},
			wantErr: ErrShortBuffer,
		},
		{
			name:    "missing meta",
			buf:     []byte{0},
			wantErr: ErrShortBuffer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, rec, err := DecodeUploadBuffer(tt.buf)
			if err != tt.wantErr {
				t.Fatalf("DecodeUploadBuffer() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if slot != tt.wantSlot {
				t.Errorf("slot = %d, want %d", slot, tt.wantSlot)
			}
			if rec != tt.want {
				t.Errorf("record = %+v, want %+v", rec, tt.want)
			}
		})
	}
}

func TestDownloadUploadRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{
			name: "single frame",
			rec: func() Record {
				var r Record
				r.FrameCount = 1
				r.Frames[0] = Frame{Color: [3]uint8{1, 2, 3}, Time: 0}
				return r
			}(),
		},
		{
			name: "full capacity",
			rec: func() Record {
				var r Record
				r.FrameCount = MaxFrames
				for i := 0; i < MaxFrames; i++ {
					r.Frames[i] = Frame{
						Color: [3]uint8{uint8(i), uint8(i * 2), uint8(i * 3)},
						Time:  uint32(i) * 250,
					}
				}
				r.TotalTime = r.Frames[MaxFrames-1].Time
				return r
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := EncodeDownloadFrames(&tt.rec)
			if len(wire) != int(tt.rec.FrameCount)*FrameSize {
				t.Fatalf("wire length = %d, want %d", len(wire), int(tt.rec.FrameCount)*FrameSize)
			}

			// Prefix the slot/count header the way an upload packet carries it.
			buf := append([]byte{4, tt.rec.FrameCount}, wire...)
			slot, got, err := DecodeUploadBuffer(buf)
			if err != nil {
				t.Fatalf("DecodeUploadBuffer() error = %v", err)
			}
			if slot != 4 {
				t.Errorf("slot = %d, want 4", slot)
			}
			if got != tt.rec {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, tt.rec)
			}
		})
	}
}

func TestStorageEnvelope(t *testing.T) {
	var rec Record
	rec.FrameCount = 3
	rec.Frames[0] = Frame{Color: [3]uint8{255, 255, 255}, Time: 0}
	rec.Frames[1] = Frame{Color: [3]uint8{0, 0, 0}, Time: 1500}
	rec.Frames[2] = Frame{Color: [3]uint8{255, 255, 255}, Time: 3000}
	rec.TotalTime = 3000

	img := MarshalStorage(&rec)
	if len(img) != RecordSize {
		t.Fatalf("envelope size = %d, want %d", len(img), RecordSize)
	}

	got, err := UnmarshalStorage(img)
	if err != nil {
		t.Fatalf("UnmarshalStorage() error = %v", err)
	}
	if got != rec {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, rec)
	}

	// The envelope is fixed-size: two records with different frame counts
	// still marshal to identical lengths.
	var small Record
	small.FrameCount = 1
	if len(MarshalStorage(&small)) != RecordSize {
		t.Error("envelope size depends on frame count")
	}
}

func TestUnmarshalStorageGarbage(t *testing.T) {
	// An unprovisioned slot full of 0xFF decodes without error; the frame
	// count is clamped to capacity rather than trusted.
	img := bytes.Repeat([]byte{0xFF}, RecordSize)
	rec, err := UnmarshalStorage(img)
	if err != nil {
		t.Fatalf("UnmarshalStorage() error = %v", err)
	}
	if int(rec.FrameCount) != MaxFrames {
		t.Errorf("FrameCount = %d, want clamp to %d", rec.FrameCount, MaxFrames)
	}

	if _, err := UnmarshalStorage(img[:RecordSize-1]); err != ErrShortBuffer {
		t.Errorf("short envelope error = %v, want %v", err, ErrShortBuffer)
	}
}
