package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

// NoticePublisher publishes operator notices as JSON on a pub/sub channel
// so other consoles can display them.
type NoticePublisher struct {
	client  *redis.Client
	channel string
	dedup   *NoticeDedup
}

func NewNoticePublisher(client *redis.Client, channel string) *NoticePublisher {
	return &NoticePublisher{
		client:  client,
		channel: channel,
		dedup:   NewNoticeDedup(client),
	}
}

// Name identifies the sink in metrics and logs.
func (p *NoticePublisher) Name() string { return "redis" }

// Deliver publishes n unless it was already published.
func (p *NoticePublisher) Deliver(ctx context.Context, n domain.Notice) error {
	fresh, err := p.dedup.Claim(ctx, n)
	if err != nil {
		return err
	}
	if !fresh {
		return nil
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notice: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish notice on %s: %w", p.channel, err)
	}
	return nil
}
