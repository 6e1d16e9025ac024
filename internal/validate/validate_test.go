package validate

import "testing"

func TestCNPJ(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid formatted", "11.222.333/0001-81", true},
		{"valid bare", "11222333000181", true},
		{"bad check digit", "11222333000182", false},
		{"all same digits", "11111111111111", false},
		{"too short", "1122233300018", false},
		{"empty", "", false},
		{"letters only", "nao e cnpj", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CNPJ(tt.in); got != tt.want {
				t.Errorf("CNPJ(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCPF(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid formatted", "529.982.247-25", true},
		{"valid bare", "52998224725", true},
		{"bad check digit", "52998224726", false},
		{"all same digits", "00000000000", false},
		{"too long", "529982247250", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CPF(tt.in); got != tt.want {
				t.Errorf("CPF(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCEP(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"01310-100", true},
		{"01310100", true},
		{"1310100", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := CEP(tt.in); got != tt.want {
			t.Errorf("CEP(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"(11) 98765-4321", true},
		{"(21) 3456-7890", true},
		{"98765-4321", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Phone(tt.in); got != tt.want {
			t.Errorf("Phone(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"fulano@empresa.com.br", true},
		{"a@b.co", true},
		{"a@b.c", false},
		{"sem-arroba.com", false},
		{"tem espaco@dominio.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		in     string
		layout string
		want   bool
	}{
		{"15/01/2024", "02/01/2006", true},
		{"2024-01-20", "2006-01-02", true},
		{"99/99/9999", "02/01/2006", false},
		{"", "02/01/2006", false},
	}
	for _, tt := range tests {
		if got := Date(tt.in, tt.layout); got != tt.want {
			t.Errorf("Date(%q, %q) = %v, want %v", tt.in, tt.layout, got, tt.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"R$ 1.234,56", true},
		{"R$ 99,90", true},
		{"50 reais", true},
		{"1 real", true},
		{"10 REAIS", true},
		{"R$ 1.234,56 extra", false},
		{"1234", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Currency(tt.in); got != tt.want {
			t.Errorf("Currency(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
