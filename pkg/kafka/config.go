package kafka

// Config holds the broker addresses and producer tuning for Kafka.
type Config struct {
	Brokers []string

	// ClientID is attached to every connection for broker-side logging.
	ClientID string
}
