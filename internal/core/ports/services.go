package ports

import (
	"context"
	"time"

	"creator-paygate/internal/core/domain"
	"creator-paygate/internal/x402"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Facilitator settles x402 payment proofs against the payment network.
type Facilitator interface {
	Settle(ctx context.Context, req x402.SettleRequest) (*x402.SettlementResult, error)
}

// GateService decides whether a request may read a piece of content.
type GateService interface {
	Access(ctx context.Context, req AccessRequest) (*AccessResult, error)
}

// AccessRequest holds the inbound request details the gate needs.
type AccessRequest struct {
	ContentID     uuid.UUID
	Method        string
	PaymentHeader string // raw X-Payment value, empty when absent

	// RequireFile rejects non-file content with a 404 before any payment
	// activity, so a download of an article never reaches settlement.
	RequireFile bool
}

// AccessResult is the gate's verdict. Exactly one of the two shapes is set:
// Content for a granted read, or Relay for a response that must be written
// back verbatim (a 402 challenge or a facilitator verdict).
type AccessResult struct {
	Content *domain.Content
	Payload []byte // file bytes, nil for articles
	Message string // settlement confirmation, empty on the free path
	Relay   *x402.SettlementResult
}

// Granted returns true when the gate released the content.
func (r *AccessResult) Granted() bool {
	return r != nil && r.Content != nil
}

// ContentService defines content management business logic.
type ContentService interface {
	Create(ctx context.Context, req CreateContentRequest) (*domain.Content, error)
	GetMeta(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	UpdatePayee(ctx context.Context, id, creatorID uuid.UUID, payeeAddress string) (*domain.Content, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Content, error)
}

// CreateContentRequest holds validated input for publishing content.
type CreateContentRequest struct {
	Title        string
	Kind         domain.ContentKind
	Body         string
	FileName     string
	ContentType  string
	FileData     []byte
	Price        decimal.Decimal
	PayeeAddress string
	CreatorID    uuid.UUID
}

// HashService handles secret hashing (Argon2id).
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(creatorID uuid.UUID, accessKey string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	CreatorID uuid.UUID
	AccessKey string
}

// AuthService defines creator authentication business logic.
type AuthService interface {
	Login(ctx context.Context, accessKey, secret string) (string, time.Time, error) // token, expiry, error
	Profile(ctx context.Context, creatorID uuid.UUID) (*domain.Creator, error)
}

// RateLimitStore enforces a fixed-window request budget per client key.
type RateLimitStore interface {
	// Allow records a hit and reports whether the key is still within limit.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
