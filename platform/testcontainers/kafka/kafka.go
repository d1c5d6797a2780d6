package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Option func(*Config)

type Config struct {
	ImageName string
	ClusterID string
	Topics    []string
	Logger    Logger
}

func WithImageName(image string) Option {
	return func(c *Config) { c.ImageName = image }
}

// WithTopics creates single-partition topics once the broker is up.
func WithTopics(topics ...string) Option {
	return func(c *Config) { c.Topics = append(c.Topics, topics...) }
}

func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}

type Container struct {
	container *tckafka.KafkaContainer
	brokers   []string
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := &Config{
		ImageName: "confluentinc/cp-kafka:7.6.1",
		ClusterID: "Mk3OEYBSD34fcwNTJENDM2Qk",
		Logger:    nopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	container, err := tckafka.Run(ctx, cfg.ImageName, tckafka.WithClusterID(cfg.ClusterID))
	if err != nil {
		return nil, fmt.Errorf("failed to start kafka container: %w", err)
	}

	success := false
	defer func() {
		if !success {
			if err := testcontainers.TerminateContainer(container); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate kafka container", zap.Error(err))
			}
		}
	}()

	brokers, err := container.Brokers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get brokers: %w", err)
	}

	if err := createTopics(brokers, cfg.Topics...); err != nil {
		return nil, fmt.Errorf("failed to create topics: %w", err)
	}

	cfg.Logger.Info(ctx, "Kafka container started", zap.Strings("brokers", brokers))
	success = true

	return &Container{
		container: container,
		brokers:   brokers,
		cfg:       cfg,
	}, nil
}

func (c *Container) Brokers() []string { return c.brokers }

func (c *Container) Terminate(ctx context.Context) error {
	if err := testcontainers.TerminateContainer(c.container); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate kafka container", zap.Error(err))
		return err
	}

	c.cfg.Logger.Info(ctx, "Kafka container terminated")

	return nil
}

func createTopics(brokers []string, topics ...string) error {
	if len(topics) == 0 {
		return nil
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Admin.Timeout = 10 * time.Second

	admin, err := sarama.NewClusterAdmin(brokers, cfg)
	if err != nil {
		return err
	}
	defer admin.Close()

	for _, t := range topics {
		err := admin.CreateTopic(t, &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		}, false)
		if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			return err
		}
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}
