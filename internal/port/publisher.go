package port

import (
	"context"

	"github.com/formsmith/formsmith/internal/domain"
)

type Publisher interface {
	PublishFormPublished(ctx context.Context, event domain.FormPublished) error
	PublishFormUpdated(ctx context.Context, event domain.FormUpdated) error
	PublishFormDeleted(ctx context.Context, event domain.FormDeleted) error
}
