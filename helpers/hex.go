package helpers

import (
	"encoding/hex"
	"strings"
)

// MustHex decodes s ignoring spaces, panics on invalid input. For tests and constants.
func MustHex(s string) []byte {
	b, err := hex.DecodeString(strings.Replace(s, " ", "", -1))
	if err != nil {
		panic(err)
	}
	return b
}
