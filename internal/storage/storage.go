// Package storage persists form-template documents behind a small Store
// interface with an in-memory implementation for tests and development and
// a gorm-backed MySQL implementation for deployments.
package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-formtemplate/pkg/template"
)

// ErrNotFound is returned when no document exists for the given id.
var ErrNotFound = errors.New("storage: template not found")

// Store is the persistence contract for form-template documents. Create
// assigns the id; Update requires one.
type Store interface {
	List(ctx context.Context) ([]*template.Template, error)
	Get(ctx context.Context, id string) (*template.Template, error)
	Create(ctx context.Context, doc *template.Template) (*template.Template, error)
	Update(ctx context.Context, doc *template.Template) (*template.Template, error)
	Delete(ctx context.Context, id string) error
}

// Memory is an in-process Store. Safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]*template.Template
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]*template.Template)}
}

func (m *Memory) List(ctx context.Context) ([]*template.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*template.Template, 0, len(m.docs))
	for _, doc := range m.docs {
		out = append(out, doc.Clone())
	}
	return out, nil
}

func (m *Memory) Get(ctx context.Context, id string) (*template.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return doc.Clone(), nil
}

func (m *Memory) Create(ctx context.Context, doc *template.Template) (*template.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("storage: document is required")
	}
	stored := doc.Clone()
	stored.ID = uuid.NewString()

	m.mu.Lock()
	m.docs[stored.ID] = stored
	m.mu.Unlock()

	return stored.Clone(), nil
}

func (m *Memory) Update(ctx context.Context, doc *template.Template) (*template.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil || doc.ID == "" {
		return nil, errors.New("storage: document id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[doc.ID]; !ok {
		return nil, ErrNotFound
	}
	stored := doc.Clone()
	m.docs[doc.ID] = stored
	return stored.Clone(), nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[id]; !ok {
		return ErrNotFound
	}
	delete(m.docs, id)
	return nil
}
