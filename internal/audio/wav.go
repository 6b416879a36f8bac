// Package audio provides minimal WAV container helpers: wrapping raw PCM in
// a WAV header and parsing a WAV file back into PCM for playback. Only
// uncompressed little-endian PCM is supported, which is all the upstream
// provider emits.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Format describes the PCM layout carried by a WAV file.
type Format struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
}

// EncodeWAV wraps raw PCM data in a WAV container.
func EncodeWAV(pcm []byte, sampleRate, channels, bytesPerSample int) []byte {
	dataLen := len(pcm)
	fileLen := 36 + dataLen // 44-byte header minus 8 bytes for RIFF header = 36

	buf := &bytes.Buffer{}
	buf.Grow(44 + dataLen)

	// RIFF header
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(fileLen))
	buf.WriteString("WAVE")

	// fmt subchunk
	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))         // subchunk1 size
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))          // audio format (PCM)
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))   // channels
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate)) // sample rate
	byteRate := sampleRate * channels * bytesPerSample
	_ = binary.Write(buf, binary.LittleEndian, uint32(byteRate)) // byte rate
	blockAlign := channels * bytesPerSample
	_ = binary.Write(buf, binary.LittleEndian, uint16(blockAlign))       // block align
	_ = binary.Write(buf, binary.LittleEndian, uint16(bytesPerSample*8)) // bits per sample

	// data subchunk
	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(pcm)

	return buf.Bytes()
}

// DecodeWAV parses a WAV container and returns its format and raw PCM data.
// Chunks other than "fmt " and "data" are skipped.
func DecodeWAV(data []byte) (Format, []byte, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return Format{}, nil, fmt.Errorf("audio: not a RIFF/WAVE file")
	}

	var (
		f      Format
		pcm    []byte
		sawFmt bool
	)

	off := 12
	for off+8 <= len(data) {
		id := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		off += 8
		if off+size > len(data) {
			return Format{}, nil, fmt.Errorf("audio: truncated %q chunk", id)
		}
		chunk := data[off : off+size]

		switch id {
		case "fmt ":
			if size < 16 {
				return Format{}, nil, fmt.Errorf("audio: fmt chunk too short (%d bytes)", size)
			}
			if codec := binary.LittleEndian.Uint16(chunk[0:2]); codec != 1 {
				return Format{}, nil, fmt.Errorf("audio: unsupported codec %d, only PCM is supported", codec)
			}
			f.Channels = int(binary.LittleEndian.Uint16(chunk[2:4]))
			f.SampleRate = int(binary.LittleEndian.Uint32(chunk[4:8]))
			f.BitsPerSample = int(binary.LittleEndian.Uint16(chunk[14:16]))
			sawFmt = true

		case "data":
			pcm = chunk
		}

		off += size
		if size%2 == 1 {
			off++ // RIFF chunks are word-aligned
		}
	}

	if !sawFmt {
		return Format{}, nil, fmt.Errorf("audio: missing fmt chunk")
	}
	if pcm == nil {
		return Format{}, nil, fmt.Errorf("audio: missing data chunk")
	}
	return f, pcm, nil
}
