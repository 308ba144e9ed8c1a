package capture

// FrameBuffer is the ordered list of chunks accumulated during a session.
type FrameBuffer struct {
	Chunks []Chunk
}

func (b *FrameBuffer) Append(c Chunk) {
	b.Chunks = append(b.Chunks, c)
}

func (b *FrameBuffer) Reset() {
	b.Chunks = nil
}

// Len returns the amount of chunks.
func (b *FrameBuffer) Len() int {
	return len(b.Chunks)
}

func (b *FrameBuffer) IsEmpty() bool {
	return len(b.Chunks) == 0
}

func (b *FrameBuffer) TotalFrames() int {
	var total int
	for _, c := range b.Chunks {
		total += c.Frames
	}
	return total
}

// Blocks returns the samples of every chunk, in order, without copying them.
func (b *FrameBuffer) Blocks() [][]float32 {
	result := make([][]float32, len(b.Chunks))
	for idx, c := range b.Chunks {
		result[idx] = c.Samples
	}
	return result
}

// Samples concatenates all the chunks into one contiguous interleaved slice.
func (b *FrameBuffer) Samples() []float32 {
	var total int
	for _, c := range b.Chunks {
		total += len(c.Samples)
	}
	result := make([]float32, 0, total)
	for _, c := range b.Chunks {
		result = append(result, c.Samples...)
	}
	return result
}
