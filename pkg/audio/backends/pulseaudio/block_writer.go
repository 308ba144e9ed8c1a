package pulseaudio

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"
	"github.com/xaionaro-go/creek/pkg/audio/types"
)

const float32Size = 4

// blockWriter receives float32le fragments of arbitrary size from Pulse and
// hands them to the callback in blocks of exactly blockSize frames.
type blockWriter struct {
	locker   sync.Mutex
	channels int
	callback types.CaptureCallback
	block    []float32
	filled   int
	partial  [float32Size]byte
	partialN int
	flushed  bool
}

var _ pulse.Writer = (*blockWriter)(nil)

func newBlockWriter(
	channels int,
	blockSize int,
	callback types.CaptureCallback,
) *blockWriter {
	return &blockWriter{
		channels: channels,
		callback: callback,
		block:    make([]float32, blockSize*channels),
	}
}

func (w *blockWriter) Format() byte {
	return proto.FormatFloat32LE
}

func (w *blockWriter) Write(p []byte) (int, error) {
	w.locker.Lock()
	defer w.locker.Unlock()

	n := len(p)
	if w.flushed {
		return n, nil
	}
	if w.partialN > 0 {
		c := copy(w.partial[w.partialN:], p)
		w.partialN += c
		p = p[c:]
		if w.partialN < float32Size {
			return n, nil
		}
		w.push(math.Float32frombits(binary.LittleEndian.Uint32(w.partial[:])))
		w.partialN = 0
	}

	for len(p) >= float32Size {
		w.push(math.Float32frombits(binary.LittleEndian.Uint32(p)))
		p = p[float32Size:]
	}
	w.partialN = copy(w.partial[:], p)
	return n, nil
}

func (w *blockWriter) push(sample float32) {
	w.block[w.filled] = sample
	w.filled++
	if w.filled == len(w.block) {
		w.emit(types.StatusFlags(0))
	}
}

func (w *blockWriter) emit(status types.StatusFlags) {
	frames := w.filled / w.channels
	if frames == 0 {
		return
	}
	w.callback(w.block[:frames*w.channels], frames, types.CallbackInfo{}, status)
	w.filled = 0
}

// Flush delivers the trailing incomplete block, if any. Everything written
// after that is discarded.
func (w *blockWriter) Flush() {
	w.locker.Lock()
	defer w.locker.Unlock()
	if w.flushed {
		return
	}
	w.flushed = true
	w.emit(types.StatusFlags(0))
	w.filled = 0
	w.partialN = 0
}
