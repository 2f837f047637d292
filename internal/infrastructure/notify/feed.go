package notify

import (
	"sync"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

const defaultFeedSize = 200

// Feed keeps the most recent notices in arrival order.
type Feed struct {
	mu      sync.Mutex
	size    int
	notices []domain.Notice
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = defaultFeedSize
	}
	return &Feed{size: size}
}

// Push appends n, evicting the oldest notice when the feed is full.
func (f *Feed) Push(n domain.Notice) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, n)
	if over := len(f.notices) - f.size; over > 0 {
		f.notices = append(f.notices[:0:0], f.notices[over:]...)
	}
}

// Recent returns up to limit of the newest notices, oldest first. A
// non-positive limit returns everything held.
func (f *Feed) Recent(limit int) []domain.Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	start := 0
	if limit > 0 && limit < len(f.notices) {
		start = len(f.notices) - limit
	}
	return append([]domain.Notice(nil), f.notices[start:]...)
}
