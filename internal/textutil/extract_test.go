package textutil

import (
	"reflect"
	"testing"
)

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"no digits", "sem numeros aqui", nil},
		{"integers", "pedido 123 item 7", []string{"123", "7"}},
		{"decimal comma", "total 45,6", []string{"45,6"}},
		{"decimal dot", "taxa 1.5 por cento", []string{"1.5"}},
		{"mixed", "12 itens por 3,50 cada", []string{"12", "3,50"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNumbers(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractNumbers(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractDates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"slash and iso grouped by shape", "Pagamento em 15/01/2024 e 2024-01-20", []string{"15/01/2024", "2024-01-20"}},
		{"dash", "vencimento 01-02-2024", []string{"01-02-2024"}},
		{"short year", "emitido em 05/03/99", []string{"05/03/99"}},
		{"no calendar validation", "data 99/99/9999", []string{"99/99/9999"}},
		{"shape order over text order", "2024-01-20 depois 15/01/2024", []string{"15/01/2024", "2024-01-20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDates(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractDates(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractCurrency(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"grouped and suffixed", "Valor: R$ 1.234,56 ou 50 reais", []string{"R$ 1.234,56", "50 reais"}},
		{"simple prefixed", "pague R$ 99,90 hoje", []string{"R$ 99,90"}},
		{"singular real", "custa 1 real", []string{"1 real"}},
		{"case insensitive suffix", "total 10 REAIS", []string{"10 REAIS"}},
		{"no money", "nenhum valor aqui", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCurrency(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractCurrency(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractTaxIDs(t *testing.T) {
	// 14 digits: one CNPJ window plus every 11-digit window as a CPF
	// candidate. The overlap is intentional and documented.
	got := ExtractTaxIDs("CNPJ: 12.345.678/9012-34")
	want := []string{
		"12345678901234",
		"12345678901",
		"23456789012",
		"34567890123",
		"45678901234",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTaxIDs = %v, want %v", got, want)
	}
}

func TestExtractTaxIDsCPFOnly(t *testing.T) {
	got := ExtractTaxIDs("CPF 529.982.247-25")
	want := []string{"52998224725"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTaxIDs = %v, want %v", got, want)
	}
}

func TestExtractTaxIDsEmpty(t *testing.T) {
	if got := ExtractTaxIDs(""); got != nil {
		t.Errorf("ExtractTaxIDs(\"\") = %v, want nil", got)
	}
	if got := ExtractTaxIDs("texto sem documento"); got != nil {
		t.Errorf("ExtractTaxIDs(no digits) = %v, want nil", got)
	}
}

func TestExtractPhones(t *testing.T) {
	// 11 digits: two 10-digit windows then the full 11-digit run.
	got := ExtractPhones("(11) 98765-4321")
	want := []string{"1198765432", "1987654321", "11987654321"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractPhones = %v, want %v", got, want)
	}
}

func TestExtractPhonesLandline(t *testing.T) {
	got := ExtractPhones("tel: (21) 3456-7890")
	want := []string{"2134567890"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractPhones = %v, want %v", got, want)
	}
}

func TestExtractCEPs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"formatted", "CEP 01310-100", []string{"01310100"}},
		{"plain", "enviar para 22041011", []string{"22041011"}},
		{"too short", "codigo 1234567", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCEPs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractCEPs(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractEmails(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "contato: fulano@empresa.com.br", []string{"fulano@empresa.com.br"}},
		{"multiple", "a@b.com e c.d+e@f.org", []string{"a@b.com", "c.d+e@f.org"}},
		{"tld too short", "x@y.z", nil},
		{"not an email", "sem arroba aqui", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEmails(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractEmails(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
