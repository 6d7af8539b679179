package testcontainers

// Environment keys read by the service that a suite overrides to point at
// containers.
const (
	KafkaEnabledKey       = "KAFKA_ENABLED"
	KafkaBrokersKey       = "KAFKA_BROKERS"
	WebhookEventsTopicKey = "WEBHOOK_EVENTS_TOPIC"
)
