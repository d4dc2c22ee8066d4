package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository"
)

var (
	ErrProfileEmailExists = repository.ErrProfileEmailExists
	ErrProfileNotFound    = repository.ErrProfileNotFound
	ErrWrongPassword      = errors.New("wrong password")
)

type AuthProfileRepository interface {
	Create(ctx context.Context, profile domain.Profile) (domain.Profile, error)
	FindByEmail(ctx context.Context, email string) (domain.Profile, error)
}

type AuthService struct {
	repo AuthProfileRepository
}

func NewAuthService(repo AuthProfileRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) Signup(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	profile.Password = string(hash)

	created, err := s.repo.Create(ctx, profile)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Profile, error) {
	profile, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domain.Profile{}, ErrProfileNotFound
		}

		return domain.Profile{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return domain.Profile{}, ErrWrongPassword
	}

	return profile, nil
}
