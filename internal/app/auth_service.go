package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/user"
	"careerconnect/internal/security"
)

type AuthService struct {
	users    user.Repository
	tokens   *security.JWTProvider
	tokenTTL time.Duration
}

func NewAuthService(users user.Repository, tokens *security.JWTProvider, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, tokens: tokens, tokenTTL: tokenTTL}
}

// Register creates an account. Role is fixed at creation and never changes.
func (s *AuthService) Register(ctx context.Context, username, password string, role user.Role) (*user.User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(username) == "" {
		fields["username"] = "username is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	normalized := user.Role(strings.ToLower(strings.TrimSpace(string(role))))
	if normalized != user.RoleStudent && normalized != user.RoleRecruiter {
		fields["role"] = "role must be student or recruiter"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid registration", fields)
	}
	account := user.User{
		Username:     strings.TrimSpace(username),
		PasswordHash: hashPassword(password),
		Role:         normalized,
	}
	return s.users.Create(ctx, account)
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *user.User
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	account, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
		}
		return nil, err
	}
	if account.PasswordHash != hashPassword(password) {
		return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	token, expiresAt, err := s.tokens.Generate(account.ID, string(account.Role), s.tokenTTL)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue token", err)
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: account}, nil
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
