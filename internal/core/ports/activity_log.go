package ports

import (
	"context"
	"time"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

// ActivityLog is the append-only, day-partitioned facility log.
type ActivityLog interface {
	Append(ctx context.Context, entry domain.LogEntry) error
	// Recent returns every entry stamped within window before now, in
	// file order. Unparsable lines are skipped.
	Recent(ctx context.Context, now time.Time, window time.Duration) ([]domain.LogEntry, error)
}
