// Package sanitize normalizes free text before it is forwarded to external
// APIs that reject control characters (notably repository descriptions).
package sanitize

import (
	"strings"

	"github.com/nitinsinghh27/TDS-PR1/constants"
)

// Clean replaces every C0 control, DEL and C1 control character with a single
// space, collapses runs of whitespace and trims the ends. It is pure, total
// and idempotent.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Description derives a repository description from a brief. The brief is
// truncated before cleaning so the result stays inside the provider's
// field-length limit even after control characters are removed.
func Description(brief string) string {
	runes := []rune(brief)
	if len(runes) > constants.MaxDescriptionLength {
		runes = runes[:constants.MaxDescriptionLength]
	}
	cleaned := Clean(string(runes))
	if cleaned == "" {
		return "Auto-generated application"
	}
	return "Auto-generated application: " + cleaned
}
