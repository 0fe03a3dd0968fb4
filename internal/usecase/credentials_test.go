package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/whatsapp-relay/internal/entity"
)

func TestResolveCredentials(t *testing.T) {
	env := entity.Credentials{AccountID: "env-id", AccessToken: "env-token"}

	t.Run("Request wins", func(t *testing.T) {
		creds, err := ResolveCredentials(entity.Credentials{AccountID: "req-id", AccessToken: "req-token"}, env)
		require.NoError(t, err)
		assert.Equal(t, entity.Credentials{AccountID: "req-id", AccessToken: "req-token"}, creds)
	})

	t.Run("Fields resolve independently", func(t *testing.T) {
		creds, err := ResolveCredentials(entity.Credentials{AccountID: "req-id"}, env)
		require.NoError(t, err)
		assert.Equal(t, entity.Credentials{AccountID: "req-id", AccessToken: "env-token"}, creds)
	})

	t.Run("Blank request values fall back", func(t *testing.T) {
		creds, err := ResolveCredentials(entity.Credentials{AccountID: "  ", AccessToken: ""}, env)
		require.NoError(t, err)
		assert.Equal(t, env, creds)
	})

	t.Run("Missing everywhere", func(t *testing.T) {
		_, err := ResolveCredentials(entity.Credentials{}, entity.Credentials{AccountID: "env-id"})
		assert.ErrorIs(t, err, ErrCredentialsMissing)
		assert.True(t, IsCredentialsMissing(err))
	})
}
