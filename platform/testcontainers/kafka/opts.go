package kafka

type Option func(*Config)

func WithImageName(image string) Option {
	return func(c *Config) {
		c.ImageName = image
	}
}

func WithClusterID(id string) Option {
	return func(c *Config) {
		c.ClusterID = id
	}
}

// WithTopics creates the topics once the broker is up.
func WithTopics(topics ...string) Option {
	return func(c *Config) {
		c.Topics = append(c.Topics, topics...)
	}
}

func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
