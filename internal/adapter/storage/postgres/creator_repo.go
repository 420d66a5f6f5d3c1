package postgres

import (
	"context"
	"errors"
	"fmt"

	"creator-paygate/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const creatorColumns = `id, name, access_key, secret_hash, wallet_address, status, created_at, updated_at`

// CreatorRepo implements ports.CreatorRepository.
type CreatorRepo struct {
	pool Pool
}

// NewCreatorRepo creates a new CreatorRepo.
func NewCreatorRepo(pool Pool) *CreatorRepo {
	return &CreatorRepo{pool: pool}
}

// Create inserts a new creator.
func (r *CreatorRepo) Create(ctx context.Context, c *domain.Creator) error {
	query := `INSERT INTO creators (` + creatorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.AccessKey, c.SecretHash, c.WalletAddress,
		c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert creator: %w", err)
	}
	return nil
}

// GetByID fetches a creator by its UUID. Returns (nil, nil) when no record
// exists.
func (r *CreatorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Creator, error) {
	query := `SELECT ` + creatorColumns + ` FROM creators WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByAccessKey fetches a creator by its public access key.
func (r *CreatorRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Creator, error) {
	query := `SELECT ` + creatorColumns + ` FROM creators WHERE access_key = $1`
	return r.getOne(ctx, query, accessKey)
}

func (r *CreatorRepo) getOne(ctx context.Context, query string, arg any) (*domain.Creator, error) {
	c := &domain.Creator{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.AccessKey, &c.SecretHash, &c.WalletAddress,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get creator: %w", err)
	}
	return c, nil
}
