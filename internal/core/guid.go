package core

import (
	"crypto/rand"
	"fmt"
)

const (
	guidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	guidLength   = 8
)

// GUID prefixes by record type.
const (
	GUIDPrefixProject = "prj"
	GUIDPrefixComment = "cmt"
	GUIDPrefixProfile = "usr"
	GUIDPrefixVote    = "vot"
	GUIDPrefixLink    = "lnk"
)

// GenerateGUID creates a short GUID with the provided prefix.
func GenerateGUID(prefix string) (string, error) {
	normalized := prefix
	if len(normalized) > 0 && normalized[len(normalized)-1] == '-' {
		normalized = normalized[:len(normalized)-1]
	}

	buf := make([]byte, guidLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate guid: %w", err)
	}

	id := make([]byte, guidLength)
	for i := 0; i < guidLength; i++ {
		id[i] = guidAlphabet[int(buf[i])%len(guidAlphabet)]
	}

	return fmt.Sprintf("%s-%s", normalized, string(id)), nil
}

// GUIDPrefix returns the type prefix of a GUID, or "" if it has none.
func GUIDPrefix(guid string) string {
	for i := 0; i < len(guid); i++ {
		if guid[i] == '-' {
			return guid[:i]
		}
	}
	return ""
}
