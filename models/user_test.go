package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleClient))
	assert.True(t, ValidRole(RoleService))
	assert.True(t, ValidRole(RoleCare))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("moderator"))
}

func TestIsOnboarded(t *testing.T) {
	tests := []struct {
		name     string
		user     UserRecord
		expected bool
	}{
		{
			name:     "complete record",
			user:     UserRecord{Role: RoleClient, Phone: "491701234567", Gender: "female"},
			expected: true,
		},
		{
			name:     "missing role",
			user:     UserRecord{Phone: "491701234567", Gender: "female"},
			expected: false,
		},
		{
			name:     "missing phone",
			user:     UserRecord{Role: RoleClient, Gender: "female"},
			expected: false,
		},
		{
			name:     "missing gender",
			user:     UserRecord{Role: RoleClient, Phone: "491701234567"},
			expected: false,
		},
		{
			name:     "fresh record",
			user:     UserRecord{ID: "user_1", Email: "a@b.com"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.IsOnboarded())
		})
	}
}
