package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karripar/personal-project-s25/internal/domain"
)

func TestCanModify(t *testing.T) {
	tests := []struct {
		name    string
		user    domain.TokenUser
		ownerID int64
		want    bool
	}{
		{"owner may modify", domain.TokenUser{UserID: 5, LevelName: domain.LevelUser}, 5, true},
		{"other user may not", domain.TokenUser{UserID: 5, LevelName: domain.LevelUser}, 6, false},
		{"admin may modify anything", domain.TokenUser{UserID: 1, LevelName: domain.LevelAdmin}, 6, true},
		{"guest owner may modify own", domain.TokenUser{UserID: 9, LevelName: domain.LevelGuest}, 9, true},
		{"guest may not modify others", domain.TokenUser{UserID: 9, LevelName: domain.LevelGuest}, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.CanModify(tt.ownerID))
		})
	}
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, domain.TokenUser{LevelName: domain.LevelAdmin}.IsAdmin())
	assert.False(t, domain.TokenUser{LevelName: domain.LevelUser}.IsAdmin())
	assert.False(t, domain.TokenUser{LevelName: "admin"}.IsAdmin())
}
