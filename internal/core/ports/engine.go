package ports

import (
	"context"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

// ClientInfoInput is a full replacement of a client's editable fields.
// ReturnTime is applied only while the client is away.
type ClientInfoInput struct {
	Name             string
	Gender           string
	Bed              string
	ChecksEnabled    bool
	ApprovedContacts string
	WakeupTime       string
	PropertyHeld     map[string]bool
	ReturnTime       string
}

// MoveResult describes the outcome of a location change.
type MoveResult struct {
	Client domain.Client
	// NoOp is true when the client already occupied the target location.
	NoOp bool
	// Cancelled is true when the operator dismissed the return-time prompt
	// and the client stayed where they were.
	Cancelled bool
}

// Engine is the operator-facing surface of the transition engine.
type Engine interface {
	AddClient(ctx context.Context, name, gender string) (*domain.Client, error)
	MoveClient(ctx context.Context, clientID, location string) (*MoveResult, error)
	UpdateClientInfo(ctx context.Context, clientID string, input ClientInfoInput) (*domain.Client, error)
	DischargeClient(ctx context.Context, clientID string) error
	AvailableBeds(excluding string) []string
	RecordEvent(ctx context.Context, eventType, comments string) error

	Clients() []domain.Client
	Client(clientID string) (*domain.Client, error)
	RecentLogs() []domain.LogEntry
	Catalog() domain.Catalog
}
