package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/okunev/orderdesk/internal/domain/errors"
	"github.com/okunev/orderdesk/internal/domain/model"
	"github.com/okunev/orderdesk/internal/domain/repository"
	pkgAuth "github.com/okunev/orderdesk/internal/pkg/auth"
)

// AuthUseCase handles operator accounts and session tokens.
type AuthUseCase struct {
	operators repository.OperatorRepository
	hasher    pkgAuth.PasswordHasher
	tokens    pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(operators repository.OperatorRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{operators: operators, hasher: hasher, tokens: strategy}
}

// Register creates a new operator account and returns a session token.
func (u *AuthUseCase) Register(ctx context.Context, login, password string) (*model.Operator, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	op, err := u.operators.Create(ctx, login, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(op.ID)
	if err != nil {
		return nil, "", err
	}

	return op, token, nil
}

// Authenticate validates credentials and returns a session token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.Operator, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	op, err := u.operators.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(op.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(op.ID)
	if err != nil {
		return nil, "", err
	}

	return op, token, nil
}

// ParseToken extracts the operator ID from a session token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
