package textutil

import (
	"errors"
	"strings"
	"testing"
)

func TestChunkInvalidConfig(t *testing.T) {
	tests := []struct {
		name          string
		size, overlap int
	}{
		{"zero size", 0, 0},
		{"negative size", -1, 0},
		{"overlap equals size", 10, 10},
		{"overlap exceeds size", 10, 20},
		{"negative overlap", 10, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Chunk("algum texto", tt.size, tt.overlap)
			if !errors.Is(err, ErrInvalidChunkConfig) {
				t.Errorf("Chunk(size=%d, overlap=%d) err = %v, want ErrInvalidChunkConfig", tt.size, tt.overlap, err)
			}
		})
	}
}

func TestChunkEmpty(t *testing.T) {
	got, err := Chunk("", 100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Chunk(\"\") = %v, want no chunks", got)
	}
}

func TestChunkShortText(t *testing.T) {
	text := "  cabe inteiro  "
	got, err := Chunk(text, 100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != text {
		t.Errorf("Chunk(short) = %v, want the untrimmed text as a single chunk", got)
	}
}

func TestChunkSnapsAtWordBoundary(t *testing.T) {
	text := strings.Repeat("palavra ", 50) // 400 bytes
	chunks, err := Chunk(text, 100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 100 {
			t.Errorf("chunk %d exceeds size: %d bytes", i, len(c))
		}
		for _, w := range strings.Fields(c) {
			if w != "palavra" {
				t.Errorf("chunk %d split a word: %q", i, w)
			}
		}
	}
}

func TestChunkUnsnappableKeepsRawBoundary(t *testing.T) {
	// no spaces anywhere: windows must fall back to the raw size boundary
	text := strings.Repeat("x", 250)
	chunks, err := Chunk(text, 100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) == 0 {
		t.Fatal("expected chunks for unbroken text")
	}
	if chunks[0] != strings.Repeat("x", 100) {
		t.Errorf("first chunk = %d bytes, want raw 100-byte window", len(chunks[0]))
	}
}

func TestChunkFinalWindowEndsScan(t *testing.T) {
	// 250 bytes, size 100, overlap 10: the windows are [0:100), [90:190)
	// and [180:250). Advancing past the final window must not re-emit its
	// tail as a fourth chunk.
	text := strings.Repeat("x", 250)
	chunks, err := Chunk(text, 100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantLens := []int{100, 100, 70}
	if len(chunks) != len(wantLens) {
		t.Fatalf("chunk count = %d, want %d (lengths %v)", len(chunks), len(wantLens), chunkLens(chunks))
	}
	for i, n := range wantLens {
		if len(chunks[i]) != n {
			t.Errorf("chunk %d length = %d, want %d", i, len(chunks[i]), n)
		}
	}
}

func chunkLens(chunks []string) []int {
	lens := make([]int, len(chunks))
	for i, c := range chunks {
		lens[i] = len(c)
	}
	return lens
}

func TestChunkCoversWholeText(t *testing.T) {
	text := strings.Repeat("um dois tres quatro cinco ", 40)
	text = strings.TrimSpace(text)
	chunks, err := Chunk(text, 80, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// every word of the original must appear in some chunk
	joined := " " + strings.Join(chunks, " ") + " "
	for _, w := range strings.Fields(text) {
		if !strings.Contains(joined, " "+w+" ") {
			t.Fatalf("word %q missing from chunk output", w)
		}
	}
	// the last chunk must reach the end of the text
	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(text, last) {
		t.Errorf("last chunk %q is not a suffix of the input", last)
	}
}

func TestChunkTerminates(t *testing.T) {
	// pathological: overlap nearly as large as size plus heavy snapping
	text := strings.Repeat("a b ", 500)
	chunks, err := Chunk(text, 10, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	// bounded by one chunk per byte in the worst case
	if len(chunks) > len(text) {
		t.Errorf("chunk count %d exceeds input length %d", len(chunks), len(text))
	}
}
