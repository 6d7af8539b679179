package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	kafkatc "github.com/testcontainers/testcontainers-go/modules/kafka"
)

func startKafkaContainer(ctx context.Context, cfg *Config) (*kafkatc.KafkaContainer, error) {
	c, err := kafkatc.Run(ctx,
		cfg.ImageName,
		kafkatc.WithClusterID(cfg.ClusterID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start kafka container: %w", err)
	}

	return c, nil
}

func createTopics(brokers []string, topics ...string) error {
	if len(topics) == 0 {
		return nil
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Admin.Timeout = adminTimeout

	admin, err := sarama.NewClusterAdmin(brokers, cfg)
	if err != nil {
		return fmt.Errorf("failed to create cluster admin: %w", err)
	}
	defer admin.Close()

	for _, t := range topics {
		err := admin.CreateTopic(t, &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		}, false)
		if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			return fmt.Errorf("failed to create topic %s: %w", t, err)
		}
	}

	return nil
}
