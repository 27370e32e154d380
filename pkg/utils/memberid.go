package utils

import (
	"crypto/rand"
	"math/big"
)

// MemberIDLength is the number of digits in a member identifier.
const MemberIDLength = 12

// GenerateMemberID generates a random 12-digit numeric member identifier.
// Leading zeros are allowed; the identifier is treated as an opaque string.
func GenerateMemberID() string {
	digits := make([]byte, MemberIDLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits)
}

// IsValidMemberID reports whether s is a well-formed member identifier.
func IsValidMemberID(s string) bool {
	if len(s) != MemberIDLength {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
