package service

import (
	"context"
	"fmt"
	"time"

	"creator-paygate/internal/core/domain"
	"creator-paygate/internal/core/ports"
	"creator-paygate/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// ContentServiceImpl implements ports.ContentService.
type ContentServiceImpl struct {
	contentRepo ports.ContentRepository
	blobs       ports.BlobStore
}

// NewContentService creates a new ContentServiceImpl.
func NewContentService(contentRepo ports.ContentRepository, blobs ports.BlobStore) *ContentServiceImpl {
	return &ContentServiceImpl{
		contentRepo: contentRepo,
		blobs:       blobs,
	}
}

// Create publishes a new piece of content. File payloads are written to the
// blob store first; the record only ever references a stored blob.
func (s *ContentServiceImpl) Create(ctx context.Context, req ports.CreateContentRequest) (*domain.Content, error) {
	if req.Price.Sign() < 0 {
		return nil, apperror.Validation("price must not be negative")
	}
	if req.PayeeAddress != "" && !common.IsHexAddress(req.PayeeAddress) {
		return nil, apperror.ErrInvalidPayee()
	}

	now := time.Now().UTC()
	content := &domain.Content{
		ID:           uuid.New(),
		Title:        req.Title,
		Kind:         req.Kind,
		Price:        req.Price,
		PayeeAddress: req.PayeeAddress,
		CreatorID:    req.CreatorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch req.Kind {
	case domain.ContentKindArticle:
		content.Body = req.Body
	case domain.ContentKindFile:
		if len(req.FileData) == 0 {
			return nil, apperror.Validation("file content requires a payload")
		}
		locator, err := s.blobs.Put(ctx, req.FileName, req.FileData)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("store blob: %w", err))
		}
		content.BlobLocator = locator
		content.FileName = req.FileName
		content.ContentType = req.ContentType
	default:
		return nil, apperror.Validation("unknown content kind")
	}

	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create content: %w", err))
	}

	return content, nil
}

// GetMeta returns the content record without releasing its payload.
func (s *ContentServiceImpl) GetMeta(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	content, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get content: %w", err))
	}
	if content == nil {
		return nil, apperror.ErrContentNotFound()
	}
	return content, nil
}

// ListByCreator returns every piece of content the creator has published.
func (s *ContentServiceImpl) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Content, error) {
	items, err := s.contentRepo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list content: %w", err))
	}
	return items, nil
}

// UpdatePayee redirects future settlements for a piece of content to a new
// wallet address. Only the owning creator may change it.
func (s *ContentServiceImpl) UpdatePayee(ctx context.Context, id, creatorID uuid.UUID, payeeAddress string) (*domain.Content, error) {
	if !common.IsHexAddress(payeeAddress) {
		return nil, apperror.ErrInvalidPayee()
	}

	content, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get content: %w", err))
	}
	if content == nil {
		return nil, apperror.ErrContentNotFound()
	}
	if content.CreatorID != creatorID {
		return nil, apperror.ErrNotContentOwner()
	}

	updated, err := s.contentRepo.Update(ctx, id, domain.ContentUpdate{PayeeAddress: &payeeAddress})
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update content: %w", err))
	}
	if updated == nil {
		return nil, apperror.ErrContentNotFound()
	}

	return updated, nil
}
