package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/crestadmit/portal/internal/documents"
)

var (
	ErrNotFound = errors.New("document not found")
)

// Update carries the partial fields a single write may touch. Nil fields are
// left unchanged; updatedAt is always refreshed.
type Update struct {
	Content  *string
	Status   *documents.Status
	Feedback *string
	Version  *int
}

// Repository provides document persistence. Listings are ordered by
// updatedAt descending.
type Repository interface {
	Insert(ctx context.Context, d *documents.Document) (string, error)
	Get(ctx context.Context, id string) (*documents.Document, error)
	ListByClient(ctx context.Context, clientID string) ([]*documents.Document, error)
	List(ctx context.Context) ([]*documents.Document, error)
	Update(ctx context.Context, id string, upd Update) error
	AppendAttachment(ctx context.Context, id, key string) error
}

// MemoryRepo is an in-memory repository used for unit tests and local runs
// without Mongo.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*documents.Document
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*documents.Document)}
}

func (m *MemoryRepo) Insert(ctx context.Context, d *documents.Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	cp := *d
	m.store[d.ID] = &cp
	return d.ID, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*documents.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.store[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) ListByClient(ctx context.Context, clientID string) ([]*documents.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*documents.Document{}
	for _, d := range m.store {
		if d.ClientID == clientID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sortByUpdatedDesc(out)
	return out, nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]*documents.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*documents.Document, 0, len(m.store))
	for _, d := range m.store {
		cp := *d
		out = append(out, &cp)
	}
	sortByUpdatedDesc(out)
	return out, nil
}

func (m *MemoryRepo) Update(ctx context.Context, id string, upd Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	if upd.Content != nil {
		d.Content = *upd.Content
	}
	if upd.Status != nil {
		d.Status = *upd.Status
	}
	if upd.Feedback != nil {
		d.Feedback = *upd.Feedback
	}
	if upd.Version != nil {
		d.Version = *upd.Version
	}
	d.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MemoryRepo) AppendAttachment(ctx context.Context, id, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	d.Attachments = append(d.Attachments, key)
	d.UpdatedAt = time.Now().UTC()
	return nil
}

func sortByUpdatedDesc(docs []*documents.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
	})
}
