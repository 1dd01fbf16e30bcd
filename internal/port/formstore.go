package port

import (
	"context"
	"errors"

	"github.com/formsmith/formsmith/internal/domain"
)

var (
	// ErrNotFound is returned for unknown or expired form ids.
	ErrNotFound = errors.New("form not found")
)

type FormStore interface {
	Save(ctx context.Context, form domain.PublishedForm) error
	Load(ctx context.Context, id string) (*domain.PublishedForm, error)
	Update(ctx context.Context, form domain.PublishedForm) error
	Delete(ctx context.Context, id string) error
}
