package atlas

// Printable ASCII characters: digits, letters, punctuation and
// whitespace, in this order.
const DefaultCharset = Digits + LowercaseLetters + UppercaseLetters + Punctuation + Whitespace

const (
	Digits = "0123456789"
	LowercaseLetters = "abcdefghijklmnopqrstuvwxyz"
	UppercaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	Whitespace = " \t\n\r\x0b\x0c"
)

// Returns the unique runes of the given charset, preserving their
// first appearance order.
func uniqueRunes(charset string) []rune {
	seen := make(map[rune]struct{}, len(charset))
	runes := make([]rune, 0, len(charset))
	for _, codePoint := range charset {
		if _, found := seen[codePoint]; found { continue }
		seen[codePoint] = struct{}{}
		runes = append(runes, codePoint)
	}
	return runes
}
