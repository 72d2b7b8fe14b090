package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSettingsIssueAPIToken(t *testing.T) {
	us := &UserSettings{UserID: 1}

	token, err := us.IssueAPIToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NotEmpty(t, us.APITokenHash)
	assert.NotEmpty(t, us.APITokenPrefix)
	assert.NotNil(t, us.APITokenCreatedAt)
	assert.Nil(t, us.APITokenLastUsedAt)
	assert.True(t, us.HasActiveAPIToken())
	assert.Equal(t, HashAPIToken(token), us.APITokenHash)
}

func TestUserSettingsRevokeAPIToken(t *testing.T) {
	us := &UserSettings{UserID: 99}
	_, err := us.IssueAPIToken()
	require.NoError(t, err)

	us.RevokeAPIToken()

	assert.False(t, us.HasActiveAPIToken())
	assert.Equal(t, "", us.APITokenHash)
	assert.Equal(t, "", us.APITokenPrefix)
	assert.NotNil(t, us.APITokenRevokedAt)
}
