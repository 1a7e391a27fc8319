package application

import (
	"errors"

	"github.com/gatherly/gatherly/pkg/helpers"
)

// ErrNoToken is returned when an operation that requires authorization is
// called without any credential at all.
var ErrNoToken = errors.New("no token")

// Authorizer gates operations on credential validity alone. It deliberately
// does not report who the caller is; operations that need the identity
// verify the token again themselves.
type Authorizer struct {
	tokens *helpers.TokenManager
}

func NewAuthorizer(tokens *helpers.TokenManager) *Authorizer {
	return &Authorizer{tokens: tokens}
}

// Authorize returns nil iff the token is present and carries a valid
// signature. A missing token fails with ErrNoToken; anything else that goes
// wrong surfaces as helpers.ErrInvalidToken.
func (a *Authorizer) Authorize(token string) error {
	if token == "" {
		return ErrNoToken
	}
	_, err := a.tokens.Verify(token)
	return err
}
