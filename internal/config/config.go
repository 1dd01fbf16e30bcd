package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTPAddr       string `env:"HTTP_ADDR" env-default:":8080"`
	LogLevel       string `env:"LOG_LEVEL" env-default:"info"`
	CORSOrigins    string `env:"CORS_ORIGINS" env-default:"*"`
	RedisAddr      string `env:"REDIS_ADDR" env-default:""`
	PostgresDSN    string `env:"POSTGRES_DSN" env-default:""`
	NATSURL        string `env:"NATS_URL" env-default:""`
	S3Region       string `env:"S3_REGION" env-default:""`
	S3Bucket       string `env:"S3_BUCKET" env-default:""`
	S3Endpoint     string `env:"S3_ENDPOINT" env-default:""`
	OTLPEndpoint   string `env:"OTLP_ENDPOINT" env-default:""`
	PublishTTL     string `env:"PUBLISH_TTL" env-default:"24h"`
	ShutdownGrace  string `env:"SHUTDOWN_GRACE" env-default:"10s"`
	MaxDescriptorB int64  `env:"MAX_DESCRIPTOR_BYTES" env-default:"1048576"`
}

func Load() (*Config, error) {
	var cfg Config

	// ReadEnv keeps configuration strictly in environment variables.
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return &cfg, nil
}
