package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

type recordingSink struct {
	name string
	err  error

	mu       sync.Mutex
	received []domain.Notice
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Deliver(_ context.Context, n domain.Notice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, n)
	return s.err
}

func (s *recordingSink) snapshot() []domain.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notice(nil), s.received...)
}

func TestNoticeQueue_DeliversToEverySinkInOrder(t *testing.T) {
	first := &recordingSink{name: "first"}
	failing := &recordingSink{name: "failing", err: errors.New("broker down")}
	q := NewNoticeQueue(3, []Sink{first, failing}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	q.Start(ctx)

	base := time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.True(t, q.Enqueue(domain.Notice{
			Kind:       domain.NoticeCheckDue,
			ClientName: "Ana",
			At:         base.Add(time.Duration(i) * 15 * time.Minute),
		}))
	}

	require.Eventually(t, func() bool {
		return len(first.snapshot()) == 5 && len(failing.snapshot()) == 5
	}, time.Second, 5*time.Millisecond)

	got := first.snapshot()
	for i := 1; i < len(got); i++ {
		require.True(t, got[i-1].At.Before(got[i].At), "notices for one client must keep their order")
	}

	cancel()
	q.Wait()
}

func TestNoticeQueue_ShardIsStable(t *testing.T) {
	q := NewNoticeQueue(8, nil, zerolog.Nop())

	idx := q.shardIndex("Ana")
	for i := 0; i < 10; i++ {
		require.Equal(t, idx, q.shardIndex("Ana"))
	}
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, 8)
}

func TestNoticeQueue_DropsWhenFull(t *testing.T) {
	q := NewNoticeQueue(1, nil, zerolog.Nop())

	for i := 0; i < channelBuffer; i++ {
		require.True(t, q.Enqueue(domain.Notice{Kind: domain.NoticeShowerEnded, ClientName: "Ana"}))
	}
	require.False(t, q.Enqueue(domain.Notice{Kind: domain.NoticeShowerEnded, ClientName: "Ana"}))
}
