package auth

import "testing"

func TestVerifyPassword(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		supplied string
		want     bool
	}{
		{"exact match", "preso2024", "preso2024", true},
		{"wrong password", "preso2024", "preso2025", false},
		{"case sensitive", "preso2024", "PRESO2024", false},
		{"prefix is not enough", "preso2024", "preso", false},
		{"empty supplied", "preso2024", "", false},
		{"both empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyPassword(tt.stored, tt.supplied); got != tt.want {
				t.Errorf("VerifyPassword(%q, %q) = %v, want %v", tt.stored, tt.supplied, got, tt.want)
			}
		})
	}
}
