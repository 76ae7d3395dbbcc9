package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"resumegenie/backend/internal/models"
)

// EventPublisher announces completed pipeline runs to downstream consumers
// (notification workers, dashboards). Publishing is best-effort; a run never
// fails because nobody could hear about it.
type EventPublisher interface {
	PublishRunReport(ctx context.Context, report *models.RunReport) error
}

type redisPublisher struct {
	rdb     *redis.Client
	channel string
}

// NewRedisPublisher connects to Redis via a URL (redis://host:port/db) and
// publishes run reports as JSON on the given channel.
func NewRedisPublisher(url, channel string) (EventPublisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return &redisPublisher{
		rdb:     redis.NewClient(opts),
		channel: channel,
	}, nil
}

// PublishRunReport implements EventPublisher.
func (p *redisPublisher) PublishRunReport(ctx context.Context, report *models.RunReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode run report: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish run report: %w", err)
	}
	return nil
}

// NopPublisher is used when no Redis URL is configured.
type NopPublisher struct{}

func (NopPublisher) PublishRunReport(ctx context.Context, report *models.RunReport) error {
	return nil
}
