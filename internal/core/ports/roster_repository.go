package ports

import (
	"context"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

// RosterRepository persists the full roster snapshot.
type RosterRepository interface {
	// Save overwrites the stored snapshot with clients.
	Save(ctx context.Context, clients []domain.Client) error
	// Load returns the stored roster. A missing or unreadable snapshot
	// yields an empty roster and a nil error; records are normalised so
	// every property key is present and every location is valid.
	Load(ctx context.Context) ([]domain.Client, error)
}
