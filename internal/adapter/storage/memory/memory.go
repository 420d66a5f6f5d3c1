// Package memory provides in-process implementations of the storage ports,
// used by the memory storage driver and in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"creator-paygate/internal/core/domain"

	"github.com/google/uuid"
)

// ContentRepo implements ports.ContentRepository in memory.
type ContentRepo struct {
	mu       sync.RWMutex
	contents map[uuid.UUID]domain.Content
}

// NewContentRepo creates an empty in-memory content repository.
func NewContentRepo() *ContentRepo {
	return &ContentRepo{contents: make(map[uuid.UUID]domain.Content)}
}

func (r *ContentRepo) Create(_ context.Context, c *domain.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.contents[c.ID]; exists {
		return fmt.Errorf("content %s already exists", c.ID)
	}
	r.contents[c.ID] = *c
	return nil
}

func (r *ContentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contents[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ContentRepo) Update(_ context.Context, id uuid.UUID, update domain.ContentUpdate) (*domain.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contents[id]
	if !ok {
		return nil, nil
	}
	if update.Title != nil {
		c.Title = *update.Title
	}
	if update.Price != nil {
		c.Price = *update.Price
	}
	if update.PayeeAddress != nil {
		c.PayeeAddress = *update.PayeeAddress
	}
	r.contents[id] = c
	return &c, nil
}

func (r *ContentRepo) ListByCreator(_ context.Context, creatorID uuid.UUID) ([]domain.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Content
	for _, c := range r.contents {
		if c.CreatorID == creatorID {
			out = append(out, c)
		}
	}
	return out, nil
}

// CreatorRepo implements ports.CreatorRepository in memory.
type CreatorRepo struct {
	mu       sync.RWMutex
	creators map[uuid.UUID]domain.Creator
	byKey    map[string]uuid.UUID
}

// NewCreatorRepo creates an empty in-memory creator repository.
func NewCreatorRepo() *CreatorRepo {
	return &CreatorRepo{
		creators: make(map[uuid.UUID]domain.Creator),
		byKey:    make(map[string]uuid.UUID),
	}
}

func (r *CreatorRepo) Create(_ context.Context, c *domain.Creator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byKey[c.AccessKey]; exists {
		return fmt.Errorf("access key %s already exists", c.AccessKey)
	}
	r.creators[c.ID] = *c
	r.byKey[c.AccessKey] = c.ID
	return nil
}

func (r *CreatorRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Creator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.creators[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CreatorRepo) GetByAccessKey(_ context.Context, accessKey string) (*domain.Creator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[accessKey]
	if !ok {
		return nil, nil
	}
	c := r.creators[id]
	return &c, nil
}

// BlobStore implements ports.BlobStore in memory.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	seq   int
}

// NewBlobStore creates an empty in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string][]byte)}
}

func (s *BlobStore) Put(_ context.Context, name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	locator := fmt.Sprintf("mem/%d/%s", s.seq, name)
	buf := make([]byte, len(data))
	copy(buf, data)
	s.blobs[locator] = buf
	return locator, nil
}

func (s *BlobStore) Get(_ context.Context, locator string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[locator]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", locator)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *BlobStore) Delete(_ context.Context, locator string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, locator)
	return nil
}
