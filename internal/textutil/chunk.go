package textutil

import (
	"errors"
	"strings"
)

// ErrInvalidChunkConfig is returned by Chunk when size or overlap cannot
// produce a terminating sequence of windows.
var ErrInvalidChunkConfig = errors.New("chunk size must be positive and overlap must be smaller than size")

// Chunk splits text into overlapping windows of at most size bytes. When a
// window's right edge falls mid-text, it is snapped back to the nearest
// preceding space inside the window so words are kept whole; if the window
// contains no space after its start, the raw boundary is kept and the word
// is split. Each emitted chunk is trimmed; empty slices are skipped. The
// next window starts overlap bytes before the previous one ended; the
// window that reaches the end of the text is the last one.
//
// Text no longer than size is returned untouched as a single chunk. Empty
// text yields no chunks. size <= 0, negative overlap, or overlap >= size
// yield ErrInvalidChunkConfig. When snapping shrinks a window so much that
// honoring the overlap would move backwards, the next window starts at the
// previous end instead, so the scan always advances.
func Chunk(text string, size, overlap int) ([]string, error) {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil, ErrInvalidChunkConfig
	}
	if text == "" {
		return nil, nil
	}
	if len(text) <= size {
		return []string{text}, nil
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + size
		if end >= len(text) {
			// Final window: take the remainder and stop. Advancing from the
			// clipped boundary would re-emit the tail of this chunk.
			if c := strings.TrimSpace(text[start:]); c != "" {
				chunks = append(chunks, c)
			}
			break
		}
		if sp := strings.LastIndexByte(text[start:end], ' '); sp > 0 {
			end = start + sp
		}

		if c := strings.TrimSpace(text[start:end]); c != "" {
			chunks = append(chunks, c)
		}

		next := end - overlap
		if next <= start {
			next = end
		}
		start = next
	}
	return chunks, nil
}
