package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContentKind distinguishes inline articles from stored file uploads.
type ContentKind string

const (
	ContentKindArticle ContentKind = "ARTICLE"
	ContentKindFile    ContentKind = "FILE"
)

// Content represents a single gated resource. Price is denominated in the
// settlement asset's display units (e.g. "0.50" USDC); a zero price makes
// the resource free.
type Content struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Kind         ContentKind     `json:"kind"`
	Body         string          `json:"body,omitempty"`         // articles
	BlobLocator  string          `json:"-"`                      // files, storage-internal
	FileName     string          `json:"file_name,omitempty"`    // files
	ContentType  string          `json:"content_type,omitempty"` // files
	Price        decimal.Decimal `json:"price"`
	PayeeAddress string          `json:"payee_address"`
	CreatorID    uuid.UUID       `json:"creator_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IsFree returns true when no payment is required to access the content.
func (c *Content) IsFree() bool {
	return c.Price.Sign() <= 0
}

// IsFile returns true when the content's payload lives in blob storage.
func (c *Content) IsFile() bool {
	return c.Kind == ContentKindFile
}

// ContentUpdate carries the mutable fields of a content record. Nil fields
// are left untouched.
type ContentUpdate struct {
	Title        *string
	Price        *decimal.Decimal
	PayeeAddress *string
}
