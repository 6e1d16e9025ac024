package textutil

import (
	"math"
	"testing"
)

func TestSimilarityEmpty(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"both empty", "", ""},
		{"a empty", "", "qualquer coisa"},
		{"b empty", "texto", ""},
		{"punctuation only normalizes to nothing", "!!!", "texto"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != 0.0 {
				t.Errorf("Similarity(%q, %q) = %v, want 0.0", tt.a, tt.b, got)
			}
		})
	}
}

func TestSimilarityReflexive(t *testing.T) {
	for _, s := range []string{"abc", "nota fiscal de serviço", "Ação É ação"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Errorf("Similarity(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := "contrato social da empresa"
	b := "empresa de contrato anual"
	if Similarity(a, b) != Similarity(b, a) {
		t.Errorf("Similarity is not symmetric for %q / %q", a, b)
	}
}

func TestSimilarityJaccard(t *testing.T) {
	// tokens {casa, azul} vs {casa, verde}: intersection 1, union 3
	got := Similarity("casa azul", "casa verde")
	want := 1.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Similarity = %v, want %v", got, want)
	}
}

func TestSimilarityCollapsesDuplicates(t *testing.T) {
	// set semantics: repeating a token must not change the score
	if Similarity("casa casa casa", "casa") != 1.0 {
		t.Error("duplicate tokens should collapse to set semantics")
	}
}

func TestSimilarityNormalizesAccents(t *testing.T) {
	if Similarity("ação", "ACAO") != 1.0 {
		t.Error("accented and unaccented forms should compare equal")
	}
}
