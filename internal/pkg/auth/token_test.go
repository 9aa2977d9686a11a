package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/user"
	"constructmart/internal/pkg/auth"
	"constructmart/internal/pkg/errs"
)

func newTestUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Asha Builder", "asha@example.com", "s3cret-pass", role)
	require.NoError(t, err)
	return u
}

func TestTokenManager(t *testing.T) {
	t.Run("should issue and verify a round trip", func(t *testing.T) {
		manager, err := auth.NewTokenManager("test-signing-key", time.Hour, 24*time.Hour)
		require.NoError(t, err)

		u := newTestUser(t, user.RoleMerchant)
		token, err := manager.Issue(u)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		principal, err := manager.Verify(token)
		require.NoError(t, err)
		assert.True(t, principal.UserID.IsEqual(u.ID()))
		assert.Equal(t, user.RoleMerchant, principal.Role)
		assert.Equal(t, "Asha Builder", principal.Name)
	})

	t.Run("should refresh with the refresh token only", func(t *testing.T) {
		manager, err := auth.NewTokenManager("test-signing-key", time.Hour, 24*time.Hour)
		require.NoError(t, err)

		pair, err := manager.IssuePair(newTestUser(t, user.RoleCustomer))
		require.NoError(t, err)
		require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

		_, err = manager.VerifyRefresh(pair.RefreshToken)
		assert.NoError(t, err)

		// an access token must not pass as a refresh token, and vice versa
		_, err = manager.VerifyRefresh(pair.AccessToken)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)

		_, err = manager.Verify(pair.RefreshToken)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject a token signed with a different key", func(t *testing.T) {
		issuer, err := auth.NewTokenManager("key-one", time.Hour, 0)
		require.NoError(t, err)
		verifier, err := auth.NewTokenManager("key-two", time.Hour, 0)
		require.NoError(t, err)

		token, err := issuer.Issue(newTestUser(t, user.RoleCustomer))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		manager, err := auth.NewTokenManager("test-signing-key", -time.Minute, 0)
		require.NoError(t, err)

		token, err := manager.Issue(newTestUser(t, user.RoleCustomer))
		require.NoError(t, err)

		_, err = manager.Verify(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject garbage tokens", func(t *testing.T) {
		manager, err := auth.NewTokenManager("test-signing-key", time.Hour, 0)
		require.NoError(t, err)

		_, err = manager.Verify("not-a-token")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should require a signing key", func(t *testing.T) {
		_, err := auth.NewTokenManager("", time.Hour, 0)
		assert.Error(t, err)
	})
}
