package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL string        `env:"DATABASE_URL"`
	SQLitePath  string        `env:"SQLITE_MIRROR_PATH"`
	ItemTimeout time.Duration `env:"ITEM_TIMEOUT" envDefault:"10s"`

	RabbitMQ RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"pt-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"price-tracker.commands"`
}
