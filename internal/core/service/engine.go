package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crisiscenter/tracker/internal/core/domain"
	"github.com/crisiscenter/tracker/internal/core/ports"
	"github.com/crisiscenter/tracker/internal/core/roster"
	"github.com/crisiscenter/tracker/internal/core/scheduler"
	"github.com/crisiscenter/tracker/internal/pkg/clock"
	"github.com/crisiscenter/tracker/internal/pkg/metrics"
)

const (
	// DefaultShowerTimeout is how long a client may stay in the shower
	// before the operator is told to end the session.
	DefaultShowerTimeout = 20 * time.Minute
	// RecentWindow is how far back the activity log is replayed at startup.
	RecentWindow = 24 * time.Hour
)

// Timers is the scheduling surface the engine needs.
type Timers interface {
	StartChecks(fire func(at time.Time)) scheduler.Timer
	ArmShower(clientID string, d time.Duration, fire func(clientID string)) scheduler.Timer
	CancelShower(clientID string) bool
	Interval() time.Duration
	Stop()
}

// Deps are the engine's collaborators. Roster, Clock and Catalog fall back
// to an empty store, the real clock and the built-in catalog.
type Deps struct {
	Roster        *roster.Store
	Repository    ports.RosterRepository
	ActivityLog   ports.ActivityLog
	Timers        Timers
	Dispatcher    ports.Dispatcher
	Clock         clock.Clock
	Catalog       domain.Catalog
	ShowerTimeout time.Duration
	NewID         func() string
}

// Engine is the client-location transition engine. Every exported method
// and every timer callback holds mu for its whole duration, so operations
// run one at a time and to completion, including while a prompt waits for
// the operator.
type Engine struct {
	mu sync.Mutex

	roster        *roster.Store
	repo          ports.RosterRepository
	activity      ports.ActivityLog
	timers        Timers
	dispatcher    ports.Dispatcher
	clock         clock.Clock
	catalog       domain.Catalog
	showerTimeout time.Duration
	newID         func() string

	// ctx is handed to collaborators from timer callbacks.
	ctx    context.Context
	recent []domain.LogEntry
	log    zerolog.Logger
}

var _ ports.Engine = (*Engine)(nil)

// NewEngine wires an engine. Call Start before serving operators.
func NewEngine(deps Deps, log zerolog.Logger) *Engine {
	if deps.Roster == nil {
		deps.Roster = roster.New()
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real()
	}
	if len(deps.Catalog.Beds) == 0 && len(deps.Catalog.Genders) == 0 {
		deps.Catalog = domain.DefaultCatalog()
	}
	if deps.ShowerTimeout <= 0 {
		deps.ShowerTimeout = DefaultShowerTimeout
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	return &Engine{
		roster:        deps.Roster,
		repo:          deps.Repository,
		activity:      deps.ActivityLog,
		timers:        deps.Timers,
		dispatcher:    deps.Dispatcher,
		clock:         deps.Clock,
		catalog:       deps.Catalog,
		showerTimeout: deps.ShowerTimeout,
		newID:         deps.NewID,
		ctx:           context.Background(),
		log:           log.With().Str("component", "engine").Logger(),
	}
}

// Start restores the persisted roster, replays the last day of activity,
// and arms the check cycle. Persistence read failures are logged and
// treated as empty data.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ctx = context.WithoutCancel(ctx)

	clients, err := e.repo.Load(ctx)
	if err != nil {
		metrics.PersistenceErrorsTotal.WithLabelValues("load_roster").Inc()
		e.log.Warn().Err(err).Msg("roster snapshot unavailable, starting empty")
		clients = nil
	}
	for _, c := range clients {
		e.restore(c)
	}
	if len(clients) > 0 {
		e.persist(ctx)
	}

	now := e.clock.Now()
	entries, err := e.activity.Recent(ctx, now, RecentWindow)
	if err != nil {
		metrics.PersistenceErrorsTotal.WithLabelValues("load_logs").Inc()
		e.log.Warn().Err(err).Msg("activity log replay failed")
	}
	e.recent = entries

	next := e.timers.StartChecks(e.runChecks)
	e.refreshGauges()
	e.log.Info().
		Int("clients", e.roster.Len()).
		Int("replayed_log_lines", len(entries)).
		Time("next_check", next.Deadline).
		Msg("engine started")
	return nil
}

// Close stops every timer.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.timers.Stop()
}

// restore re-applies a persisted client without logging. Records that
// would break a roster invariant are repaired.
func (e *Engine) restore(c domain.Client) {
	if c.Name == "" {
		e.log.Warn().Str("client_id", c.ID).Msg("skipping snapshot record without a name")
		return
	}
	if c.ID == "" {
		c.ID = e.newID()
	}
	if _, dup := e.roster.Get(c.ID); dup {
		c.ID = e.newID()
	}
	if holder, taken := e.roster.BedHolder(c.Bed, c.ID); taken {
		e.log.Warn().Str("client", c.Name).Str("bed", c.Bed).Str("holder_id", holder).Msg("bed already restored for another client, clearing")
		c.Bed = ""
	}
	loc := domain.ParseLocation(string(c.Location))
	if loc == domain.LocationAway && c.ReturnTime == "" {
		e.log.Warn().Str("client", c.Name).Msg("away without a return time, restoring to default location")
		loc = domain.DefaultLocation
	}
	if loc != domain.LocationAway {
		c.ReturnTime = ""
	}
	c.PropertyHeld = domain.NormalizeProperty(c.PropertyHeld)

	if _, err := e.roster.Add(c); err != nil {
		e.log.Warn().Err(err).Str("client", c.Name).Msg("skipping snapshot record")
		return
	}
	e.roster.Place(c.ID, loc)
	if loc == domain.LocationShower {
		e.timers.ArmShower(c.ID, e.showerTimeout, e.showerExpired)
	}
}

// Clients returns copies of every tracked client in roster order.
func (e *Engine) Clients() []domain.Client {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.roster.Snapshot()
}

// Client returns a copy of one client.
func (e *Engine) Client(clientID string) (*domain.Client, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.roster.Get(clientID)
	if !ok {
		return nil, fmt.Errorf("get client %s: %w", clientID, domain.ErrClientNotFound)
	}
	out := c.Clone()
	return &out, nil
}

// Catalog returns the facility catalog the engine validates against.
func (e *Engine) Catalog() domain.Catalog { return e.catalog }

// RecentLogs returns the activity lines of the trailing RecentWindow: the
// lines replayed at startup plus everything written since.
func (e *Engine) RecentLogs() []domain.LogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.trimRecent()
	return append([]domain.LogEntry(nil), e.recent...)
}

// trimRecent drops lines older than RecentWindow.
func (e *Engine) trimRecent() {
	cutoff := e.clock.Now().Add(-RecentWindow)
	drop := 0
	for drop < len(e.recent) && e.recent[drop].Timestamp.Before(cutoff) {
		drop++
	}
	if drop > 0 {
		e.recent = append([]domain.LogEntry(nil), e.recent[drop:]...)
	}
}

// record appends a line to the activity log. Write failures are logged and
// never undo the operation that produced the line.
func (e *Engine) record(ctx context.Context, message string) {
	entry := domain.LogEntry{Timestamp: e.clock.Now(), Message: domain.FlattenMessage(message)}
	e.trimRecent()
	e.recent = append(e.recent, entry)
	if err := e.activity.Append(ctx, entry); err != nil {
		metrics.PersistenceErrorsTotal.WithLabelValues("append_log").Inc()
		e.log.Error().Err(err).Str("message", message).Msg("failed to append activity log")
	}
}

// persist writes the full roster snapshot.
func (e *Engine) persist(ctx context.Context) {
	if err := e.repo.Save(ctx, e.roster.Snapshot()); err != nil {
		metrics.PersistenceErrorsTotal.WithLabelValues("save_roster").Inc()
		e.log.Error().Err(err).Msg("failed to save roster snapshot")
	}
}

// reject warns the operator about invalid input and returns err.
func (e *Engine) reject(ctx context.Context, op string, err error) error {
	metrics.ValidationErrorsTotal.WithLabelValues(op).Inc()
	ports.PrompterFrom(ctx, e.dispatcher).WarnInvalidInput(ctx, err.Error())
	e.log.Debug().Err(err).Str("op", op).Msg("operation rejected")
	return err
}

func (e *Engine) refreshGauges() {
	for _, loc := range domain.Locations {
		metrics.ClientsByLocation.WithLabelValues(string(loc)).Set(float64(len(e.roster.Members(loc))))
	}
}
