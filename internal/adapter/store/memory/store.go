package memory

import (
	"context"
	"sync"
	"time"

	"github.com/formsmith/formsmith/internal/domain"
	"github.com/formsmith/formsmith/internal/port"
)

type Store struct {
	mu    sync.Mutex
	forms map[string]domain.PublishedForm
}

func NewStore() *Store {
	return &Store{forms: make(map[string]domain.PublishedForm)}
}

func (s *Store) Save(ctx context.Context, form domain.PublishedForm) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms[form.ID] = form
	return nil
}

func (s *Store) Load(ctx context.Context, id string) (*domain.PublishedForm, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	form, ok := s.forms[id]
	if !ok || form.Expired(time.Now().UTC()) {
		return nil, port.ErrNotFound
	}
	out := form
	return &out, nil
}

func (s *Store) Update(ctx context.Context, form domain.PublishedForm) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.forms[form.ID]; !ok {
		return port.ErrNotFound
	}
	s.forms[form.ID] = form
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.forms[id]; !ok {
		return port.ErrNotFound
	}
	delete(s.forms, id)
	return nil
}
