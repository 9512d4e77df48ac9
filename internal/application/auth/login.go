package auth

import (
	"context"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
	domerrors "github.com/taskhive/taskhive/internal/domain/errors"
)

// DefaultTokenExpiry is used when no expiry is configured (24h).
const DefaultTokenExpiry = 86400

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  *domain.User
	Token string
}

// Login verifies credentials and issues an access token. Unknown email and bad
// password return the same error so the response leaks nothing.
type Login struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	issuer   ports.TokenIssuer
	tokenExp int64
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, tokenExp int64) *Login {
	if tokenExp <= 0 {
		tokenExp = DefaultTokenExpiry
	}
	return &Login{users: users, hasher: hasher, issuer: issuer, tokenExp: tokenExp}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	token, err := uc.issuer.IssueToken(user.ID.String(), uc.tokenExp)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Token: token}, nil
}
