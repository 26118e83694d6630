// Package wire decodes the fixed-size UDP datagram formats used by the
// head-orientation and gaze streams.
//
// Both formats are headerless little-endian payloads with no checksum or
// sequence number:
//
//	pose: 8 bytes  = pan float32 | tilt float32
//	gaze: 9 bytes  = looking bool (1 byte) | timestamp int64
//
// The canonical gaze layout is packed. Senders built on C-style native
// struct alignment pad the bool to eight bytes, giving a 16-byte
// datagram; the decoder accepts that form too, with the timestamp at
// offset 8.
package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Datagram sizes in bytes.
const (
	PoseSize = 8
	GazeSize = 9
	// GazeSizePadded is the legacy native-alignment layout: 7 padding
	// bytes between the bool and the timestamp.
	GazeSizePadded = 16
)

// PoseSample is one head-orientation reading. Angles are in degrees and
// unconstrained: any real value is a valid input.
type PoseSample struct {
	Pan  float32
	Tilt float32
}

// GazeSample is one gaze reading. Timestamp is the sender's clock and is
// passed through opaquely.
type GazeSample struct {
	Looking   bool
	Timestamp int64
}

// DecodePose parses an 8-byte pose datagram.
func DecodePose(data []byte) (PoseSample, error) {
	if len(data) != PoseSize {
		return PoseSample{}, fmt.Errorf("pose datagram is %d bytes, want %d: %w", len(data), PoseSize, ErrBadLength)
	}
	return PoseSample{
		Pan:  math.Float32frombits(binary.LittleEndian.Uint32(data[0:4])),
		Tilt: math.Float32frombits(binary.LittleEndian.Uint32(data[4:8])),
	}, nil
}

// DecodeGaze parses a gaze datagram in either the packed or the legacy
// padded layout.
func DecodeGaze(data []byte) (GazeSample, error) {
	switch len(data) {
	case GazeSize:
		return GazeSample{
			Looking:   data[0] != 0,
			Timestamp: int64(binary.LittleEndian.Uint64(data[1:9])),
		}, nil
	case GazeSizePadded:
		return GazeSample{
			Looking:   data[0] != 0,
			Timestamp: int64(binary.LittleEndian.Uint64(data[8:16])),
		}, nil
	default:
		return GazeSample{}, fmt.Errorf("gaze datagram is %d bytes, want %d or %d: %w", len(data), GazeSize, GazeSizePadded, ErrBadLength)
	}
}

// MarshalBinary encodes the sample as an 8-byte pose datagram.
func (s PoseSample) MarshalBinary() ([]byte, error) {
	buf := make([]byte, PoseSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(s.Pan))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(s.Tilt))
	return buf, nil
}

// MarshalBinary encodes the sample as a 9-byte gaze datagram.
func (s GazeSample) MarshalBinary() ([]byte, error) {
	buf := make([]byte, GazeSize)
	if s.Looking {
		buf[0] = 1
	}
	binary.LittleEndian.PutUint64(buf[1:9], uint64(s.Timestamp))
	return buf, nil
}
