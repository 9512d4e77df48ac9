package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
	domerrors "github.com/taskhive/taskhive/internal/domain/errors"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterResult struct {
	User  *domain.User
	Token string
}

// Register creates an account and signs the user in.
type Register struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	issuer   ports.TokenIssuer
	tokenExp int64
}

func NewRegister(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, tokenExp int64) *Register {
	if tokenExp <= 0 {
		tokenExp = DefaultTokenExpiry
	}
	return &Register{users: users, hasher: hasher, issuer: issuer, tokenExp: tokenExp}
}

func (uc *Register) Execute(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	existing, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrUserExists
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         "user",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	token, err := uc.issuer.IssueToken(user.ID.String(), uc.tokenExp)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{User: user, Token: token}, nil
}
