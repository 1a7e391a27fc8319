package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gatherly/gatherly/pkg/helpers"
)

func TestAuthorize_MissingToken(t *testing.T) {
	t.Parallel()

	a := NewAuthorizer(helpers.NewTokenManager("secret"))
	require.ErrorIs(t, a.Authorize(""), ErrNoToken)
}

func TestAuthorize_ValidToken(t *testing.T) {
	t.Parallel()

	tokens := helpers.NewTokenManager("secret")
	a := NewAuthorizer(tokens)

	tok, err := tokens.Issue("u1")
	require.NoError(t, err)
	require.NoError(t, a.Authorize(tok))
}

func TestAuthorize_InvalidToken(t *testing.T) {
	t.Parallel()

	tokens := helpers.NewTokenManager("secret")
	a := NewAuthorizer(tokens)

	require.ErrorIs(t, a.Authorize("garbage"), helpers.ErrInvalidToken)

	// signed with a different secret
	tok, err := helpers.NewTokenManager("other-secret").Issue("u1")
	require.NoError(t, err)
	require.ErrorIs(t, a.Authorize(tok), helpers.ErrInvalidToken)
}
