// Package chunker splits document text into bounded, overlapping chunks
// for vector indexing. Cuts prefer sentence or line boundaries so chunks
// stay semantically coherent; a chunk never breaks mid-word unless the
// window contains no boundary at all.
package chunker

import (
	"strings"
	"unicode/utf8"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultOverlap is the default number of overlapping characters between
// consecutive chunks.
const DefaultOverlap = 200

// Chunker splits text into fixed-size chunks with overlap.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between consecutive chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a Chunker. An overlap >= chunk size would stall the window
// advance, so it is clamped to a quarter of the chunk size.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}
	return c
}

// ChunkSize returns the configured chunk size.
func (c *Chunker) ChunkSize() int { return c.chunkSize }

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int { return c.overlap }

// Split cuts text into chunks of at most ChunkSize characters. When the
// window is not at the end of the text, the cut moves back to the last
// sentence terminator or newline inside the window, if there is one past
// the window start. The next window starts overlap characters before the
// previous cut, so consecutive chunks share up to Overlap characters and
// together cover the whole text.
func (c *Chunker) Split(text string) []string {
	if text == "" {
		return nil
	}

	var chunks []string
	start := 0

	for start < len(text) {
		end := start + c.chunkSize
		if end >= len(text) {
			end = len(text)
		} else {
			end = cutPoint(text, start, end)
		}

		if chunk := strings.TrimSpace(text[start:end]); chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(text) {
			break
		}

		// Back up by the overlap, but always advance past the previous
		// window start so the walk terminates. A start inside a
		// multi-byte rune moves forward to the next rune.
		next := end - c.overlap
		if next <= start {
			next = start + 1
		}
		for next < len(text) && !utf8.RuneStart(text[next]) {
			next++
		}
		start = next
	}

	return chunks
}

// cutPoint finds the cut for the window [start, end). It prefers the last
// '.' or '\n' strictly after start, keeping the terminator in the chunk;
// with no boundary in the window it cuts at the raw position, backed up
// to a rune start so multi-byte characters stay intact.
func cutPoint(text string, start, end int) int {
	window := text[start:end]
	period := strings.LastIndexByte(window, '.')
	newline := strings.LastIndexByte(window, '\n')

	boundary := period
	if newline > boundary {
		boundary = newline
	}
	if boundary > 0 {
		return start + boundary + 1
	}
	for end > start+1 && !utf8.RuneStart(text[end]) {
		end--
	}
	return end
}
