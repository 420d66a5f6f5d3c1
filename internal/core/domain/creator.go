package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreatorStatus represents the state of a creator account.
type CreatorStatus string

const (
	CreatorStatusActive    CreatorStatus = "ACTIVE"
	CreatorStatusSuspended CreatorStatus = "SUSPENDED"
)

// Creator represents a registered content publisher.
type Creator struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	AccessKey     string        `json:"access_key"`
	SecretHash    string        `json:"-"` // Never expose
	WalletAddress string        `json:"wallet_address"`
	Status        CreatorStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// IsActive returns true if the creator account is active.
func (c *Creator) IsActive() bool {
	return c.Status == CreatorStatusActive
}
