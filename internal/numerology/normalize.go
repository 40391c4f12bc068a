// Package numerology implements the Pythagorean numerology engine:
// name normalization, the letter cipher and digit-sum reduction. Every
// function is pure; the only state is the fixed letter table.
package numerology

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/solmira/arquetipo/pkg/types"
)

// NormalizeName uppercases a name and strips everything outside A-Z.
// Accented forms are decomposed first and their combining marks dropped,
// so "José Núñez" becomes "JOSENUNEZ" instead of losing letters.
// Returns ErrInvalidInput when no letters survive the stripping.
func NormalizeName(name string) (string, error) {
	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if unicode.Is(unicode.Mn, r) {
			// Combining mark left over from decomposition.
			continue
		}
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", types.ErrInvalidInput
	}
	return b.String(), nil
}
