package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	natsadapter "github.com/formsmith/formsmith/internal/adapter/events/nats"
	"github.com/formsmith/formsmith/internal/adapter/events/nop"
	"github.com/formsmith/formsmith/internal/adapter/store/memory"
	formpg "github.com/formsmith/formsmith/internal/adapter/store/postgres"
	formredis "github.com/formsmith/formsmith/internal/adapter/store/redis"
	"github.com/formsmith/formsmith/internal/adapter/storage/s3"
	"github.com/formsmith/formsmith/internal/config"
	"github.com/formsmith/formsmith/internal/port"
	"github.com/formsmith/formsmith/internal/service"
)

type Container struct {
	Config *config.Config

	Store   port.FormStore
	Events  port.Publisher
	Archive port.ArchiveStorage

	SvcForms *Forms

	closers []func()
}

// Forms aliases the service type so callers only import app.
type Forms = service.Forms

// NewContainer wires adapters by configuration: postgres wins over
// redis for the store tier, memory is the fallback; events and archive
// stay optional.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	switch {
	case cfg.PostgresDSN != "":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		c.closers = append(c.closers, pool.Close)
		c.Store = formpg.NewStore(pool)
	case cfg.RedisAddr != "":
		client := formredis.NewClient(cfg.RedisAddr)
		c.closers = append(c.closers, func() { _ = client.Close() })
		c.Store = formredis.NewStore(client)
	default:
		c.Store = memory.NewStore()
	}

	if cfg.NATSURL != "" {
		pub, err := natsadapter.NewPublisher(cfg.NATSURL)
		if err != nil {
			return nil, fmt.Errorf("connect nats: %w", err)
		}
		c.closers = append(c.closers, pub.Close)
		c.Events = pub
	} else {
		c.Events = nop.NewPublisher()
	}

	if cfg.S3Bucket != "" {
		archive, err := s3.New(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3Endpoint)
		if err != nil {
			return nil, fmt.Errorf("init s3: %w", err)
		}
		c.Archive = archive
	}

	ttl, err := time.ParseDuration(cfg.PublishTTL)
	if err != nil {
		return nil, fmt.Errorf("parse publish ttl: %w", err)
	}
	c.SvcForms = service.NewForms(c.Store, c.Events, c.Archive, ttl)

	return c, nil
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
