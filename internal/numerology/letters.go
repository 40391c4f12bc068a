package numerology

// letterValues is the Pythagorean cipher: the 26 Latin letters in three
// interleaved groups of nine (A,J,S share 1; B,K,T share 2; and so on).
var letterValues = map[rune]int{
	'A': 1, 'J': 1, 'S': 1,
	'B': 2, 'K': 2, 'T': 2,
	'C': 3, 'L': 3, 'U': 3,
	'D': 4, 'M': 4, 'V': 4,
	'E': 5, 'N': 5, 'W': 5,
	'F': 6, 'O': 6, 'X': 6,
	'G': 7, 'P': 7, 'Y': 7,
	'H': 8, 'Q': 8, 'Z': 8,
	'I': 9, 'R': 9,
}

// LetterDigit returns the cipher value of a letter. Lowercase input is
// accepted. Anything outside the 26 Latin letters maps to 0; normalized
// names never contain such runes, so the zero is a defensive default,
// not an error path.
func LetterDigit(r rune) int {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return letterValues[r]
}
