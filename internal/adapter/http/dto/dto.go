package dto

import (
	"creator-paygate/internal/core/domain"
)

// LoginRequest is the request body for creator login.
type LoginRequest struct {
	AccessKey string `json:"access_key" binding:"required"`
	Secret    string `json:"secret" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// UpdatePayeeRequest is the request body for redirecting settlements.
type UpdatePayeeRequest struct {
	PayeeAddress string `json:"payee_address" binding:"required,eth_addr"`
}

// CreatorProfileResponse is the authenticated creator's own account view.
type CreatorProfileResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccessKey     string `json:"access_key"`
	WalletAddress string `json:"wallet_address,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

// NewCreatorProfileResponse maps a creator account, hiding credentials.
func NewCreatorProfileResponse(cr *domain.Creator) CreatorProfileResponse {
	return CreatorProfileResponse{
		ID:            cr.ID.String(),
		Name:          cr.Name,
		AccessKey:     cr.AccessKey,
		WalletAddress: cr.WalletAddress,
		Status:        string(cr.Status),
		CreatedAt:     cr.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ContentMetaResponse describes a piece of content without its payload.
type ContentMetaResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Kind         string `json:"kind"`
	FileName     string `json:"file_name,omitempty"`
	Price        string `json:"price"`
	PayeeAddress string `json:"payee_address"`
	CreatedAt    string `json:"created_at"`
}

// ArticleResponse is the delivery body for article content.
type ArticleResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Message string `json:"message,omitempty"`
}

// NewContentMetaResponse maps a domain record to its public metadata.
func NewContentMetaResponse(c *domain.Content) ContentMetaResponse {
	return ContentMetaResponse{
		ID:           c.ID.String(),
		Title:        c.Title,
		Kind:         string(c.Kind),
		FileName:     c.FileName,
		Price:        c.Price.String(),
		PayeeAddress: c.PayeeAddress,
		CreatedAt:    c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// NewArticleResponse maps a delivered article, with the settlement message
// when the read was paid for.
func NewArticleResponse(c *domain.Content, message string) ArticleResponse {
	return ArticleResponse{
		ID:      c.ID.String(),
		Title:   c.Title,
		Body:    c.Body,
		Message: message,
	}
}
