package text

import "testing"

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		expect Direction
	}{
		{"empty", "", DirectionLTR},
		{"latin", "hello", DirectionLTR},
		{"digits", "12345", DirectionLTR},
		{"spaces only", "   ", DirectionLTR},
		{"hebrew", "שלום", DirectionRTL},
		{"arabic", "مرحبا", DirectionRTL},
		{"rtl leading run", "שלום world", DirectionRTL},
		{"ltr leading run", "hello שלום", DirectionLTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.s); got != tt.expect {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.s, got, tt.expect)
			}
		})
	}
}
