package helper

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reSlugDisallowed = regexp.MustCompile(`[^a-z0-9 -]`)
	reSlugSpaces     = regexp.MustCompile(`\s+`)
	reSlugHyphens    = regexp.MustCompile(`-+`)
)

// GenerateSlug menormalkan judul menjadi slug:
// - lower-case, diakritik dilipat (é → e)
// - buang semua karakter selain [a-z0-9], spasi, "-"
// - spasi beruntun → satu "-", "-" beruntun → satu "-"
// - trim "-" di kedua ujung
//
// "Jalan Desa Selesai!" → "jalan-desa-selesai"
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	out := reSlugDisallowed.ReplaceAllString(b.String(), "")
	out = reSlugSpaces.ReplaceAllString(strings.TrimSpace(out), "-")
	out = reSlugHyphens.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
