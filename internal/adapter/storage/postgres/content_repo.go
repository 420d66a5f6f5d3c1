package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"creator-paygate/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const contentColumns = `id, title, kind, body, blob_locator, file_name, content_type, price, payee_address, creator_id, created_at, updated_at`

// ContentRepo implements ports.ContentRepository.
type ContentRepo struct {
	pool Pool
}

// NewContentRepo creates a new ContentRepo.
func NewContentRepo(pool Pool) *ContentRepo {
	return &ContentRepo{pool: pool}
}

// Create inserts a new content record.
func (r *ContentRepo) Create(ctx context.Context, c *domain.Content) error {
	query := `INSERT INTO contents (` + contentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Title, c.Kind, c.Body, c.BlobLocator, c.FileName,
		c.ContentType, c.Price.String(), c.PayeeAddress, c.CreatorID,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert content: %w", err)
	}
	return nil
}

// GetByID fetches a content record by its UUID. Returns (nil, nil) when no
// record exists.
func (r *ContentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents WHERE id = $1`

	c, err := scanContent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get content by id: %w", err)
	}
	return c, nil
}

// Update applies the non-nil fields of the update and returns the fresh
// record. Returns (nil, nil) when no record exists.
func (r *ContentRepo) Update(ctx context.Context, id uuid.UUID, update domain.ContentUpdate) (*domain.Content, error) {
	sets := []string{"updated_at = $1"}
	args := []any{time.Now().UTC()}

	if update.Title != nil {
		args = append(args, *update.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if update.Price != nil {
		args = append(args, update.Price.String())
		sets = append(sets, fmt.Sprintf("price = $%d", len(args)))
	}
	if update.PayeeAddress != nil {
		args = append(args, *update.PayeeAddress)
		sets = append(sets, fmt.Sprintf("payee_address = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE contents SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), contentColumns)

	c, err := scanContent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update content: %w", err)
	}
	return c, nil
}

// ListByCreator fetches all content published by a creator, newest first.
func (r *ContentRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents WHERE creator_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	defer rows.Close()

	var out []domain.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	return out, nil
}

// scanContent reads one content row. Price travels as text to keep exact
// decimal precision.
func scanContent(row pgx.Row) (*domain.Content, error) {
	c := &domain.Content{}
	var price string
	if err := row.Scan(
		&c.ID, &c.Title, &c.Kind, &c.Body, &c.BlobLocator, &c.FileName,
		&c.ContentType, &price, &c.PayeeAddress, &c.CreatorID,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", price, err)
	}
	c.Price = parsed
	return c, nil
}
