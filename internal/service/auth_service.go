package service

import (
	"context"
	"fmt"
	"time"

	"creator-paygate/internal/core/domain"
	"creator-paygate/internal/core/ports"
	"creator-paygate/pkg/apperror"

	"github.com/google/uuid"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	creatorRepo ports.CreatorRepository
	hashSvc     ports.HashService
	tokenSvc    ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	creatorRepo ports.CreatorRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		creatorRepo: creatorRepo,
		hashSvc:     hashSvc,
		tokenSvc:    tokenSvc,
	}
}

// Login validates creator credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, accessKey, secret string) (string, time.Time, error) {
	creator, err := s.creatorRepo.GetByAccessKey(ctx, accessKey)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find creator: %w", err))
	}
	if creator == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(secret, creator.SecretHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify secret: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if !creator.IsActive() {
		return "", time.Time{}, apperror.ErrCreatorSuspended()
	}

	token, expiry, err := s.tokenSvc.Generate(creator.ID, creator.AccessKey)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}

// Profile returns the creator behind an authenticated token.
func (s *AuthServiceImpl) Profile(ctx context.Context, creatorID uuid.UUID) (*domain.Creator, error) {
	creator, err := s.creatorRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get creator: %w", err))
	}
	if creator == nil {
		return nil, apperror.ErrCreatorNotFound()
	}
	return creator, nil
}
