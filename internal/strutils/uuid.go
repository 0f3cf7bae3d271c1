package strutils

import (
	"fmt"
	"strings"
	"unicode"
)

const VALID_HEX_DIGITS = "0123456789abcdefABCDEF"

const STRIPPED_UUID_LENGTH = 32

// dashOffsets are the indexes of the dashes in a canonical dashed UUID.
var dashOffsets = []int{8, 12, 16, 20}

// NormalizeUUID converts a save slot id to its canonical form: lowercase,
// dashed 8-4-4-4-12. Input dashes are ignored entirely, so stripped and
// partially dashed ids normalize too.
func NormalizeUUID(uuid string) (string, error) {
	var stripped strings.Builder
	builderCap := stripped.Cap()
	missingCap := STRIPPED_UUID_LENGTH - builderCap
	if missingCap > 0 {
		stripped.Grow(missingCap)
	}

	for _, char := range uuid {
		if char == '-' {
			continue
		} else if strings.ContainsRune(VALID_HEX_DIGITS, char) {
			_, err := stripped.WriteRune(unicode.ToLower(char))
			if err != nil {
				return "", fmt.Errorf("failed writing to stringbuilder: %w", err)
			}
		} else {
			return "", fmt.Errorf("invalid character in UUID. input: '%s'", uuid)
		}
	}
	if stripped.Len() != STRIPPED_UUID_LENGTH {
		return "", fmt.Errorf("normalized UUID has incorrect length. input: '%s'", uuid)
	}

	hex := stripped.String()
	var dashed strings.Builder
	dashed.Grow(STRIPPED_UUID_LENGTH + len(dashOffsets))
	previous := 0
	for _, offset := range dashOffsets {
		dashed.WriteString(hex[previous:offset])
		dashed.WriteByte('-')
		previous = offset
	}
	dashed.WriteString(hex[previous:])

	return dashed.String(), nil
}

// UUIDIsNormalized reports whether the id is already in canonical form.
func UUIDIsNormalized(uuid string) bool {
	normalized, err := NormalizeUUID(uuid)
	if err != nil {
		return false
	}
	return normalized == uuid
}
