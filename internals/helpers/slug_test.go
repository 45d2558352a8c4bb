package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation stripped", "Jalan Desa Selesai!", "jalan-desa-selesai"},
		{"collapse whitespace", "  Musyawarah   Desa  2024 ", "musyawarah-desa-2024"},
		{"keeps hyphen", "Kerja-Bakti Rutin", "kerja-bakti-rutin"},
		{"collapse hyphens", "Panen -- Raya", "panen-raya"},
		{"diacritics folded", "Café Désa", "cafe-desa"},
		{"only symbols", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSlug(tt.in); got != tt.want {
				t.Fatalf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
