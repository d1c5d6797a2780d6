package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Client interface {
	Host() string
	Port() int
	Address() string
}

type Server interface {
	Client
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
	PredictRateLimit() int
	CORSAllowedOrigins() []string
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
	MaxConns() int32
}

type Model interface {
	Path() string
	MetadataPath() string
	RuntimeLibraryPath() string
	ClassifyTimeout() time.Duration
}

type Auth interface {
	SessionSecret() []byte
	SessionTTL() time.Duration
	AdminEmails() []string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	CheckoutCompletedTopic() string
	CheckoutCompletedConsumerGroupID() string
	CheckoutCompletedProducerConfig() *sarama.Config
	CheckoutCompletedConsumerConfig() *sarama.Config
}
