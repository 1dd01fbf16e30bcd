package formredis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/formsmith/formsmith/internal/domain"
	"github.com/formsmith/formsmith/internal/port"
)

const formPrefix = "form:"

// record is the stored shape. The token hash travels through an exported
// field because domain.PublishedForm hides it from API marshaling.
type record struct {
	Form          domain.PublishedForm `json:"form"`
	EditTokenHash []byte               `json:"editTokenHash"`
}

type Store struct {
	client *redis.Client
}

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Save(ctx context.Context, form domain.PublishedForm) error {
	b, err := json.Marshal(record{Form: form, EditTokenHash: form.EditTokenHash})
	if err != nil {
		return fmt.Errorf("marshal form: %w", err)
	}
	ttl := time.Until(form.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Hour
	}
	return s.client.Set(ctx, formPrefix+form.ID, b, ttl).Err()
}

func (s *Store) Load(ctx context.Context, id string) (*domain.PublishedForm, error) {
	raw, err := s.client.Get(ctx, formPrefix+id).Result()
	if err == redis.Nil {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load form: %w", err)
	}
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal form: %w", err)
	}
	form := rec.Form
	form.EditTokenHash = rec.EditTokenHash
	return &form, nil
}

func (s *Store) Update(ctx context.Context, form domain.PublishedForm) error {
	// The record keeps its original expiry; Save recomputes the TTL from it.
	if _, err := s.Load(ctx, form.ID); err != nil {
		return err
	}
	return s.Save(ctx, form)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, formPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	if n == 0 {
		return port.ErrNotFound
	}
	return nil
}
