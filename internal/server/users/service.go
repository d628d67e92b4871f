// Package users authenticates logins against bcrypt-hashed accounts and
// mints access tokens for them.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tweetstats/internal/common"
	"github.com/dmitrijs2005/tweetstats/internal/server/auth"
	"github.com/dmitrijs2005/tweetstats/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register hashes password and stores the account.
func (s *Service) Register(ctx context.Context, username, password, name string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{UserName: username, Name: name, PasswordHash: hash})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Seed registers every configured account.
func (s *Service) Seed(ctx context.Context, accounts []config.Account) error {
	for _, a := range accounts {
		name := a.Name
		if name == "" {
			name = a.Username
		}
		if _, err := s.Register(ctx, a.Username, a.Password, name); err != nil {
			return err
		}
	}
	return nil
}

// Login checks the password and returns a fresh access token. Unknown users
// and wrong passwords both yield common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, userName, password string) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	token, err := auth.GenerateToken(user.UserName, user.Name, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// WhoAmI resolves a token issued by Login to the account's display name.
func (s *Service) WhoAmI(ctx context.Context, token string) (string, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return "", err
	}

	user, err := s.repo.GetUserByLogin(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	return user.Name, nil
}
