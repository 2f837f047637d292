package notify

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/crisiscenter/tracker/internal/core/domain"
	"github.com/crisiscenter/tracker/internal/pkg/clock"
)

type capturingQueue struct {
	notices []domain.Notice
}

func (q *capturingQueue) Enqueue(n domain.Notice) bool {
	q.notices = append(q.notices, n)
	return true
}

func TestDispatcher_NoticesReachFeedAndQueue(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)
	feed := NewFeed(10)
	q := &capturingQueue{}
	d := NewDispatcher(feed, q, clock.Fake(now), zerolog.Nop())

	d.NotifyCheckDue(context.Background(), "Ana")
	d.NotifyShowerEnded(context.Background(), "Ben")

	got := feed.Recent(0)
	require.Len(t, got, 2)
	require.Equal(t, domain.NoticeCheckDue, got[0].Kind)
	require.Equal(t, "Check on Ana", got[0].Message)
	require.Equal(t, domain.NoticeShowerEnded, got[1].Kind)
	require.Equal(t, "Tell Ben their shower time has ended.", got[1].Message)
	require.True(t, got[1].At.Equal(now))
	require.Equal(t, got, q.notices)
}

func TestDispatcher_WarningsStayLocal(t *testing.T) {
	feed := NewFeed(10)
	q := &capturingQueue{}
	d := NewDispatcher(feed, q, nil, zerolog.Nop())

	d.WarnInvalidInput(context.Background(), "name and gender are required")

	require.Len(t, feed.Recent(0), 1)
	require.Equal(t, domain.NoticeInvalidInput, feed.Recent(0)[0].Kind)
	require.Empty(t, q.notices)
}

func TestDispatcher_DeclinesPrompts(t *testing.T) {
	d := NewDispatcher(NewFeed(1), nil, nil, zerolog.Nop())

	_, ok := d.RequestReturnTime(context.Background(), "Ana")
	require.False(t, ok)
	require.False(t, d.ConfirmSecurityScreening(context.Background(), "Ana"))
}

func TestFeed_EvictsOldest(t *testing.T) {
	feed := NewFeed(3)
	for i := 0; i < 5; i++ {
		feed.Push(domain.Notice{Message: fmt.Sprint(i)})
	}

	got := feed.Recent(0)
	require.Len(t, got, 3)
	require.Equal(t, "2", got[0].Message)
	require.Equal(t, "4", got[2].Message)

	last := feed.Recent(2)
	require.Len(t, last, 2)
	require.Equal(t, "3", last[0].Message)
}
