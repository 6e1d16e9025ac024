package textutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"accents stripped", "Ação é São Paulo", "acao e sao paulo"},
		{"punctuation to space", "nota-fiscal: n.123/2024", "nota fiscal n 123 2024"},
		{"whitespace collapsed", "  muito \t espaço \n aqui  ", "muito espaco aqui"},
		{"uppercase folded", "CONTRATO SOCIAL", "contrato social"},
		{"digits kept", "CNPJ 12.345.678/0001-90", "cnpj 12 345 678 0001 90"},
		{"cedilla", "prestação de serviços", "prestacao de servicos"},
		{"only punctuation", "!!! ??? ...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Ação é São Paulo",
		"Valor: R$ 1.234,56 pago em 15/01/2024",
		"  muito \t espaço  ",
		"já normalizado sem acento",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"simple tags", "<p>Nota fiscal</p>", "Nota fiscal"},
		{"nested tags", "<div><b>Total</b>: 100</div>", "Total: 100"},
		{"named entity deleted", "Fulano &amp; Cia", "Fulano Cia"},
		{"numeric entity deleted", "linha&#10;quebrada", "linhaquebrada"},
		{"whitespace collapsed", "<p>a</p>\n\n<p>b</p>", "a b"},
		{"gt inside attribute ends tag early", `<a title="a>b">link</a>`, `b">link`},
		{"no markup", "texto puro", "texto puro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripHTML(tt.in)
			if got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
