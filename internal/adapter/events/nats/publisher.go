package nats

import (
	"context"
	"encoding/json"
	"fmt"

	natspkg "github.com/nats-io/nats.go"

	"github.com/formsmith/formsmith/internal/domain"
)

type Publisher struct {
	nc *natspkg.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	nc, err := natspkg.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Publisher{nc: nc}, nil
}

func (p *Publisher) Close() {
	p.nc.Close()
}

func (p *Publisher) PublishFormPublished(ctx context.Context, event domain.FormPublished) error {
	return p.publish("form.published", event)
}

func (p *Publisher) PublishFormUpdated(ctx context.Context, event domain.FormUpdated) error {
	return p.publish("form.updated", event)
}

func (p *Publisher) PublishFormDeleted(ctx context.Context, event domain.FormDeleted) error {
	return p.publish("form.deleted", event)
}

func (p *Publisher) publish(subject string, event any) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.nc.Publish(subject, b)
}
