package messaging

import "context"

// NoopPublisher используется когда брокеры Kafka не сконфигурированы:
// сервис работает автономно, события отбрасываются
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
