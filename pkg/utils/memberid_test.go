package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateMemberID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateMemberID()
		assert.Len(t, id, MemberIDLength)
		assert.True(t, IsValidMemberID(id))
		seen[id] = true
	}

	// 100 random 12-digit IDs colliding would point at a broken generator
	assert.Len(t, seen, 100)
}

func TestIsValidMemberID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "valid", id: "123456789012", want: true},
		{name: "leading zeros", id: "000000000001", want: true},
		{name: "too short", id: "12345678901", want: false},
		{name: "too long", id: "1234567890123", want: false},
		{name: "empty", id: "", want: false},
		{name: "non-digit", id: "12345678901a", want: false},
		{name: "spaces", id: "123456 89012", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidMemberID(tt.id))
		})
	}
}
