package formpg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formsmith/formsmith/internal/domain"
	"github.com/formsmith/formsmith/internal/port"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Save(ctx context.Context, form domain.PublishedForm) error {
	if s.db == nil {
		return fmt.Errorf("db not configured")
	}
	descriptor, err := json.Marshal(form.Descriptor)
	if err != nil {
		return fmt.Errorf("marshal descriptor: %w", err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO forms (id, descriptor, edittokenhash, createdat, updatedat, expiresat)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET descriptor = EXCLUDED.descriptor, updatedat = EXCLUDED.updatedat
	`, form.ID, descriptor, form.EditTokenHash, form.CreatedAt, form.UpdatedAt, form.ExpiresAt)
	return err
}

func (s *Store) Load(ctx context.Context, id string) (*domain.PublishedForm, error) {
	if s.db == nil {
		return nil, fmt.Errorf("db not configured")
	}
	row := s.db.QueryRow(ctx, `
		SELECT id, descriptor, edittokenhash, createdat, updatedat, expiresat
		FROM forms WHERE id = $1
	`, id)

	var form domain.PublishedForm
	var descriptor []byte
	if err := row.Scan(&form.ID, &descriptor, &form.EditTokenHash, &form.CreatedAt, &form.UpdatedAt, &form.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, fmt.Errorf("load form: %w", err)
	}
	if err := json.Unmarshal(descriptor, &form.Descriptor); err != nil {
		return nil, fmt.Errorf("unmarshal descriptor: %w", err)
	}
	if form.Expired(time.Now().UTC()) {
		return nil, port.ErrNotFound
	}
	return &form, nil
}

func (s *Store) Update(ctx context.Context, form domain.PublishedForm) error {
	if s.db == nil {
		return fmt.Errorf("db not configured")
	}
	descriptor, err := json.Marshal(form.Descriptor)
	if err != nil {
		return fmt.Errorf("marshal descriptor: %w", err)
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE forms SET descriptor = $2, updatedat = $3 WHERE id = $1
	`, form.ID, descriptor, form.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if s.db == nil {
		return fmt.Errorf("db not configured")
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM forms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Sweep deletes expired records. Meant to run periodically from the
// serve bootstrap.
func (s *Store) Sweep(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, fmt.Errorf("db not configured")
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM forms WHERE expiresat < now()`)
	if err != nil {
		return 0, fmt.Errorf("sweep forms: %w", err)
	}
	return tag.RowsAffected(), nil
}
