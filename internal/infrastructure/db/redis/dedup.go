package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

const dedupTTL = time.Hour

// NoticeDedup remembers which notices were already published so a restart
// or a second tracker process on the same channel does not announce the
// same check twice.
// Key format: notice:<kind>:<client>:<unix_timestamp>
type NoticeDedup struct {
	client *redis.Client
}

func NewNoticeDedup(client *redis.Client) *NoticeDedup {
	return &NoticeDedup{client: client}
}

// Claim marks n as published. It reports false if n was already claimed.
func (d *NoticeDedup) Claim(ctx context.Context, n domain.Notice) (bool, error) {
	ok, err := d.client.SetNX(ctx, d.key(n), "1", dedupTTL).Result()
	if err != nil {
		return false, fmt.Errorf("notice dedup: %w", err)
	}
	return ok, nil
}

func (d *NoticeDedup) key(n domain.Notice) string {
	return fmt.Sprintf("notice:%s:%s:%d", n.Kind, n.ClientName, n.At.Unix())
}
