package scoring

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// wheelAlphabet is the guessable letter set, Vietnamese letters with the
// diacritics folded away. F, J, W and Z do not occur in Vietnamese words.
const wheelAlphabet = "ABCDEGHIKLMNOPQRSTUVXY"

const wheelVowels = "AEIOUY"

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldLetters uppercases the input and strips Vietnamese diacritics, so that
// for example 'Ố' and 'ộ' both fold to 'O'. Đ folds to D, which combining-mark
// removal alone does not handle.
func foldLetters(s string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToUpper(s))
	if err != nil {
		folded = strings.ToUpper(s)
	}
	return strings.Map(func(r rune) rune {
		if r == 'Đ' {
			return 'D'
		}
		return r
	}, folded)
}

func isWheelLetter(r rune) bool {
	return strings.ContainsRune(wheelAlphabet, r)
}

func isWheelVowel(r rune) bool {
	return strings.ContainsRune(wheelVowels, r)
}
