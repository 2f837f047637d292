// Package scheduler owns the tracker's timers: the recurring wall-clock
// check cycle and one shower timeout per client. Timers are plain values
// keyed by client id; callbacks receive the id and must look the client up
// at fire time.
package scheduler

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/crisiscenter/tracker/internal/pkg/clock"
)

// DefaultCheckInterval is the wall-clock period of the wellness check cycle.
const DefaultCheckInterval = 15 * time.Minute

// Kind distinguishes the two timer families.
type Kind string

const (
	KindCheckCycle Kind = "check_cycle"
	KindShower     Kind = "shower"
)

// Timer describes an armed timer.
type Timer struct {
	ClientID string
	Deadline time.Time
	Kind     Kind
}

type entry struct {
	timer  Timer
	handle clock.Timer
	seq    uint64
	// expired is set once the callback has run. The entry stays in place
	// until it is cancelled so an expired shower still counts as armed.
	expired bool
}

// Scheduler arms, cancels, and fires timers. It is safe for concurrent use;
// callbacks run without the scheduler's lock held.
type Scheduler struct {
	clock    clock.Clock
	interval time.Duration
	log      zerolog.Logger

	mu      sync.Mutex
	seq     uint64
	showers map[string]*entry
	check   *entry
	onCheck func(at time.Time)
	stopped bool
}

// New returns a Scheduler. A non-positive interval selects
// DefaultCheckInterval.
func New(clk clock.Clock, interval time.Duration, log zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	return &Scheduler{
		clock:    clk,
		interval: interval,
		log:      log.With().Str("component", "scheduler").Logger(),
		showers:  make(map[string]*entry),
	}
}

// Interval returns the check cycle period.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// NextBoundary returns the first wall-clock instant strictly after now that
// falls on a multiple of interval counted from local midnight. interval is
// truncated to whole minutes.
func NextBoundary(now time.Time, interval time.Duration) time.Time {
	step := int(interval / time.Minute)
	if step <= 0 {
		step = 1
	}
	minutes := now.Hour()*60 + now.Minute()
	next := (minutes/step + 1) * step
	return time.Date(now.Year(), now.Month(), now.Day(), 0, next, 0, 0, now.Location())
}

// StartChecks arms the check cycle. fire runs at every boundary, after
// which the cycle re-arms itself for the following boundary. Calling
// StartChecks again replaces the callback and re-arms.
func (s *Scheduler) StartChecks(fire func(at time.Time)) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.check != nil {
		s.check.handle.Stop()
	}
	s.onCheck = fire
	s.armCheckLocked(s.clock.Now())
	return s.check.timer
}

// NextCheck returns the currently armed check cycle timer.
func (s *Scheduler) NextCheck() (Timer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.check == nil || s.stopped {
		return Timer{}, false
	}
	return s.check.timer, true
}

func (s *Scheduler) armCheckLocked(base time.Time) {
	now := s.clock.Now()
	if now.After(base) {
		base = now
	}
	deadline := NextBoundary(base, s.interval)
	s.seq++
	e := &entry{
		timer: Timer{Kind: KindCheckCycle, Deadline: deadline},
		seq:   s.seq,
	}
	seq := e.seq
	e.handle = s.clock.AfterFunc(deadline.Sub(now), func() { s.fireCheck(seq) })
	s.check = e
	s.log.Debug().Time("deadline", deadline).Msg("check cycle armed")
}

func (s *Scheduler) fireCheck(seq uint64) {
	s.mu.Lock()
	if s.stopped || s.check == nil || s.check.seq != seq {
		s.mu.Unlock()
		return
	}
	at := s.check.timer.Deadline
	fire := s.onCheck
	s.mu.Unlock()

	if fire != nil {
		fire(at)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.check == nil || s.check.seq != seq {
		return
	}
	// Re-arm from the boundary that just fired so an early wake-up can
	// never select the same boundary twice.
	s.armCheckLocked(at)
}

// ArmShower arms a shower timeout for clientID, replacing any timer already
// armed for that client.
func (s *Scheduler) ArmShower(clientID string, d time.Duration, fire func(clientID string)) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.showers[clientID]; ok {
		old.handle.Stop()
	}
	now := s.clock.Now()
	s.seq++
	e := &entry{
		timer: Timer{ClientID: clientID, Kind: KindShower, Deadline: now.Add(d)},
		seq:   s.seq,
	}
	seq := e.seq
	e.handle = s.clock.AfterFunc(d, func() { s.fireShower(clientID, seq, fire) })
	s.showers[clientID] = e
	s.log.Debug().Str("client_id", clientID).Time("deadline", e.timer.Deadline).Msg("shower timer armed")
	return e.timer
}

func (s *Scheduler) fireShower(clientID string, seq uint64, fire func(string)) {
	s.mu.Lock()
	e, ok := s.showers[clientID]
	if s.stopped || !ok || e.seq != seq || e.expired {
		s.mu.Unlock()
		return
	}
	e.expired = true
	s.mu.Unlock()

	fire(clientID)
}

// CancelShower removes the shower timer for clientID. It reports whether a
// timer was present.
func (s *Scheduler) CancelShower(clientID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.showers[clientID]
	if !ok {
		return false
	}
	e.handle.Stop()
	delete(s.showers, clientID)
	s.log.Debug().Str("client_id", clientID).Msg("shower timer cancelled")
	return true
}

// ShowerTimer returns the shower timer for clientID, including one that
// has already expired but has not been cancelled.
func (s *Scheduler) ShowerTimer(clientID string) (Timer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.showers[clientID]
	if !ok {
		return Timer{}, false
	}
	return e.timer, true
}

// Stop cancels every timer. The scheduler fires nothing afterwards.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.check != nil {
		s.check.handle.Stop()
	}
	for id, e := range s.showers {
		e.handle.Stop()
		delete(s.showers, id)
	}
}
