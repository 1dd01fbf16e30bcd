package nop

import (
	"context"

	"github.com/formsmith/formsmith/internal/domain"
)

// Publisher drops every event. Used when no broker is configured.
type Publisher struct{}

func NewPublisher() Publisher { return Publisher{} }

func (Publisher) PublishFormPublished(ctx context.Context, event domain.FormPublished) error {
	return nil
}

func (Publisher) PublishFormUpdated(ctx context.Context, event domain.FormUpdated) error {
	return nil
}

func (Publisher) PublishFormDeleted(ctx context.Context, event domain.FormDeleted) error {
	return nil
}
