package textutil

import "testing"

func TestTruncateForDisplay(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"empty", "", 10, ""},
		{"fits", "curto", 10, "curto"},
		{"exact fit", "1234567890", 10, "1234567890"},
		{"truncated", "texto muito longo para caber", 10, "texto m..."},
		{"tiny max", "abcdef", 2, "..."},
		{"multibyte not split", "ação e reação em cadeia", 10, "ação e ..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateForDisplay(tt.in, tt.maxLen)
			if got != tt.want {
				t.Errorf("TruncateForDisplay(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"uma", 1},
		{"duas palavras", 2},
		{"  espaços   extras  aqui ", 3},
	}
	for _, tt := range tests {
		if got := WordCount(tt.in); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCharCount(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		includeSpaces bool
		want          int
	}{
		{"empty", "", true, 0},
		{"with spaces", "a b c", true, 5},
		{"without spaces", "a b c", false, 3},
		{"multibyte counted as one", "ação", true, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CharCount(tt.in, tt.includeSpaces); got != tt.want {
				t.Errorf("CharCount(%q, %v) = %d, want %d", tt.in, tt.includeSpaces, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWords int
		want     string
	}{
		{"empty", "", 5, ""},
		{"within limit keeps original spacing", "duas  palavras", 5, "duas  palavras"},
		{"truncated normalizes spacing", "um  dois   tres quatro", 2, "um dois..."},
		{"exact word limit", "um dois tres", 3, "um dois tres"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.in, tt.maxWords)
			if got != tt.want {
				t.Errorf("Summarize(%q, %d) = %q, want %q", tt.in, tt.maxWords, got, tt.want)
			}
		})
	}
}
