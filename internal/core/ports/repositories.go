package ports

import (
	"context"

	"creator-paygate/internal/core/domain"

	"github.com/google/uuid"
)

// ContentRepository defines persistence operations for gated content.
// GetByID returns (nil, nil) when no record exists.
type ContentRepository interface {
	Create(ctx context.Context, content *domain.Content) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	Update(ctx context.Context, id uuid.UUID, update domain.ContentUpdate) (*domain.Content, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Content, error)
}

// CreatorRepository defines persistence operations for creators.
// Get methods return (nil, nil) when no record exists.
type CreatorRepository interface {
	Create(ctx context.Context, creator *domain.Creator) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Creator, error)
	GetByAccessKey(ctx context.Context, accessKey string) (*domain.Creator, error)
}

// BlobStore holds the raw payloads of file content. Put returns an opaque
// locator that Get resolves later.
type BlobStore interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
	Get(ctx context.Context, locator string) ([]byte, error)
	Delete(ctx context.Context, locator string) error
}
