package helper

import (
	"regexp"
	"testing"
	"time"
)

var nomorPattern = regexp.MustCompile(`^\d{6}-[A-Z0-9]{6}$`)

func TestGenerateSubmissionNumber(t *testing.T) {
	now := time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		got, err := GenerateSubmissionNumber(now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !nomorPattern.MatchString(got) {
			t.Fatalf("nomor %q tidak cocok pola", got)
		}
		if got[:6] != "240307" {
			t.Fatalf("prefix tanggal = %q, want 240307", got[:6])
		}
		seen[got] = true
	}
	if len(seen) < 45 {
		t.Fatalf("terlalu banyak nomor kembar: %d unik dari 50", len(seen))
	}
}
