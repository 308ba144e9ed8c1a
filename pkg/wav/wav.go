// Package wav stores PCM16 audio in RIFF/WAVE containers.
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	BitDepth = 16

	formatPCM = 1
)

// Audio is decoded PCM16 audio; Samples are interleaved.
type Audio struct {
	Samples    []int16
	SampleRate int
	Channels   int
	BitDepth   int
}

// Frames returns the amount of multichannel sample instants.
func (a *Audio) Frames() int {
	if a.Channels == 0 {
		return 0
	}
	return len(a.Samples) / a.Channels
}

// PCMS16LE returns the samples as little-endian signed 16-bit PCM bytes.
func (a *Audio) PCMS16LE() []byte {
	result := make([]byte, 2*len(a.Samples))
	for idx, sample := range a.Samples {
		binary.LittleEndian.PutUint16(result[2*idx:], uint16(sample))
	}
	return result
}

// Writer encodes interleaved samples block by block, so the whole recording
// never has to be converted at once.
type Writer struct {
	encoder  *wav.Encoder
	buf      *audio.IntBuffer
	channels int
	started  bool
}

func NewWriter(
	w io.WriteSeeker,
	sampleRate int,
	channels int,
) (*Writer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("channels count must be positive, got %d", channels)
	}
	return &Writer{
		encoder: wav.NewEncoder(w, sampleRate, BitDepth, channels, formatPCM),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: BitDepth,
		},
		channels: channels,
	}, nil
}

func (w *Writer) write(count int, sample func(idx int) int16) error {
	if count%w.channels != 0 {
		return fmt.Errorf("the amount of samples (%d) is not a multiple of the channels count (%d)", count, w.channels)
	}
	if cap(w.buf.Data) < count {
		w.buf.Data = make([]int, count)
	}
	w.buf.Data = w.buf.Data[:count]
	for idx := range w.buf.Data {
		w.buf.Data[idx] = int(sample(idx))
	}
	w.started = true
	if err := w.encoder.Write(w.buf); err != nil {
		return fmt.Errorf("unable to write the samples: %w", err)
	}
	return nil
}

func (w *Writer) WritePCM16(samples []int16) error {
	return w.write(len(samples), func(idx int) int16 {
		return samples[idx]
	})
}

// WriteFloat32 clips the samples to PCM16 (see Float32ToPCM16) and writes them.
func (w *Writer) WriteFloat32(samples []float32) error {
	return w.write(len(samples), func(idx int) int16 {
		return float32ToPCM16(samples[idx])
	})
}

// Close finalizes the headers; the underlying writer is not closed.
func (w *Writer) Close() error {
	if !w.started {
		if err := w.WritePCM16(nil); err != nil {
			return err
		}
	}
	if err := w.encoder.Close(); err != nil {
		return fmt.Errorf("unable to finalize the WAV headers: %w", err)
	}
	return nil
}

// Encode writes interleaved PCM16 samples as an uncompressed WAV stream.
func Encode(
	w io.WriteSeeker,
	samples []int16,
	sampleRate int,
	channels int,
) error {
	if channels > 0 && len(samples)%channels != 0 {
		return fmt.Errorf("the amount of samples (%d) is not a multiple of the channels count (%d)", len(samples), channels)
	}
	return encodeWith(w, sampleRate, channels, func(wr *Writer) error {
		return wr.WritePCM16(samples)
	})
}

func encodeWith(
	w io.WriteSeeker,
	sampleRate int,
	channels int,
	writeFn func(*Writer) error,
) error {
	wr, err := NewWriter(w, sampleRate, channels)
	if err != nil {
		return err
	}
	if err := writeFn(wr); err != nil {
		_ = wr.Close()
		return err
	}
	return wr.Close()
}

func createFile(path string, writeFn func(f *os.File) error) (_err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create '%s': %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil && _err == nil {
			_err = fmt.Errorf("unable to close '%s': %w", path, err)
		}
	}()

	if err := writeFn(f); err != nil {
		return fmt.Errorf("unable to encode '%s': %w", path, err)
	}
	return nil
}

// WriteFile creates (or truncates) the file at path and encodes the samples into it.
func WriteFile(
	path string,
	samples []int16,
	sampleRate int,
	channels int,
) error {
	return createFile(path, func(f *os.File) error {
		return Encode(f, samples, sampleRate, channels)
	})
}

// WriteFloat32BlocksFile encodes the blocks (interleaved float32 each) one
// after another into a new file at path, converting them to PCM16 on the fly.
func WriteFloat32BlocksFile(
	path string,
	blocks [][]float32,
	sampleRate int,
	channels int,
) error {
	return createFile(path, func(f *os.File) error {
		return encodeWith(f, sampleRate, channels, func(wr *Writer) error {
			for idx, block := range blocks {
				if err := wr.WriteFloat32(block); err != nil {
					return fmt.Errorf("block #%d: %w", idx, err)
				}
			}
			return nil
		})
	})
}

func Decode(r io.ReadSeeker) (*Audio, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid WAV stream")
	}
	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("unsupported WAV audio format %d (only PCM is supported)", dec.WavAudioFormat)
	}
	if dec.BitDepth != BitDepth {
		return nil, fmt.Errorf("unsupported bit depth %d (only %d is supported)", dec.BitDepth, BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("unable to read the PCM data: %w", err)
	}

	result := &Audio{
		Samples:    make([]int16, len(buf.Data)),
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}
	for idx, sample := range buf.Data {
		result.Samples[idx] = int16(sample)
	}
	return result, nil
}

func ReadFile(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open '%s': %w", path, err)
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("unable to decode '%s': %w", path, err)
	}
	return a, nil
}
