// Package capture moves audio blocks from a realtime driver callback to an
// ordinary worker goroutine without ever blocking the driver.
//
// The driver side calls Pipeline.OnAudioAvailable, which copies the block and
// pushes it into an unbounded ChunkQueue. A drain goroutine pops the chunks,
// accumulates them in a FrameBuffer and reports progress. On Stop the drain
// goroutine exits only after the queue is empty, so nothing pushed before the
// driver was stopped is lost.
package capture
