package token_test

import (
	"testing"
	"time"

	"shopadmin/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_IssueAndParse(t *testing.T) {
	t.Run("round_trip_preserves_subject_and_role", func(t *testing.T) {
		issuer := token.NewIssuer("test-secret", time.Hour)

		signed, err := issuer.Issue("user-123", "admin")
		require.NoError(t, err)
		require.NotEmpty(t, signed)

		claims, err := issuer.Parse(signed)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.Subject)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("expired_token_is_rejected", func(t *testing.T) {
		issuer := token.NewIssuer("test-secret", -time.Minute)

		signed, err := issuer.Issue("user-123", "shipper")
		require.NoError(t, err)

		_, err = issuer.Parse(signed)
		require.ErrorIs(t, err, token.ErrTokenExpired)
	})

	t.Run("token_signed_with_other_secret_is_rejected", func(t *testing.T) {
		issuer := token.NewIssuer("secret-a", time.Hour)
		other := token.NewIssuer("secret-b", time.Hour)

		signed, err := issuer.Issue("user-123", "staff")
		require.NoError(t, err)

		_, err = other.Parse(signed)
		require.ErrorIs(t, err, token.ErrTokenInvalid)
	})

	t.Run("garbage_is_rejected", func(t *testing.T) {
		issuer := token.NewIssuer("test-secret", time.Hour)

		_, err := issuer.Parse("not-a-token")
		require.ErrorIs(t, err, token.ErrTokenInvalid)
	})
}
