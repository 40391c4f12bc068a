package numerology

// NameNumber computes the name number of a full name: normalize, map
// each letter through the Pythagorean cipher, sum, then reduce with
// master numbers. The result is in {1..9, 11, 22, 33}. Returns
// ErrInvalidInput when the name has no usable letters.
func NameNumber(fullName string) (int, error) {
	normalized, err := NormalizeName(fullName)
	if err != nil {
		return 0, err
	}

	sum := 0
	for _, r := range normalized {
		sum += LetterDigit(r)
	}

	return ReduceWithMasters(sum)
}
