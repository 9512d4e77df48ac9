package ports

// PasswordHasher hashes and verifies passwords (Argon2id).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer signs and validates access tokens (HS256).
type TokenIssuer interface {
	IssueToken(userID string, expiresInSeconds int64) (string, error)
	// ValidateToken returns the user id carried by the token.
	ValidateToken(tokenString string) (userID string, err error)
}
