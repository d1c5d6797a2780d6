package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers                    []string `env:"KAFKA_BROKERS" envSeparator:","`
	CheckoutCompletedTopicName string   `env:"CHECKOUT_COMPLETED_TOPIC_NAME" envDefault:"cart.checkout.completed"`
	CheckoutCompletedGroupID   string   `env:"CHECKOUT_COMPLETED_CONSUMER_GROUP_ID" envDefault:"shape-shop-purchases"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

// Enabled reports whether any broker is configured.
func (cfg *kafka) Enabled() bool                  { return len(cfg.raw.Brokers) > 0 }
func (cfg *kafka) Brokers() []string              { return cfg.raw.Brokers }
func (cfg *kafka) CheckoutCompletedTopic() string { return cfg.raw.CheckoutCompletedTopicName }
func (cfg *kafka) CheckoutCompletedConsumerGroupID() string {
	return cfg.raw.CheckoutCompletedGroupID
}

func (cfg *kafka) CheckoutCompletedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}

func (cfg *kafka) CheckoutCompletedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}
