package service

import (
	"context"
	"fmt"
	"time"

	"github.com/crisiscenter/tracker/internal/core/domain"
	"github.com/crisiscenter/tracker/internal/core/ports"
	"github.com/crisiscenter/tracker/internal/pkg/metrics"
)

// MoveClient changes a client's location. Unknown location names resolve to
// the default location. Moving to Away asks the operator for a return time
// and is abandoned, with the client left where they were, if the prompt is
// dismissed. Returning from Away asks for a security screening
// confirmation. Entering the shower arms a timeout; leaving it cancels one.
func (e *Engine) MoveClient(ctx context.Context, clientID, location string) (*ports.MoveResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.roster.Get(clientID)
	if !ok {
		return nil, fmt.Errorf("move client %s: %w", clientID, domain.ErrClientNotFound)
	}

	target := domain.ParseLocation(location)
	prior := c.Location

	if target == prior {
		if !e.roster.IsMember(c.ID, target) {
			e.roster.Place(c.ID, target)
			e.refreshGauges()
		}
		return &ports.MoveResult{Client: c.Clone(), NoOp: true}, nil
	}

	prompter := ports.PrompterFrom(ctx, e.dispatcher)

	if target == domain.LocationAway {
		answer, ok := prompter.RequestReturnTime(ctx, c.Name)
		if !ok {
			e.rollback(c)
			metrics.DeparturesCancelledTotal.Inc()
			e.log.Info().Str("client_id", c.ID).Msg("departure cancelled at return-time prompt")
			return &ports.MoveResult{Client: c.Clone(), Cancelled: true}, nil
		}
		returnTime, err := domain.ParseTimeOfDay(answer)
		if err != nil {
			return nil, e.reject(ctx, "move", fmt.Errorf("move client %s: %w", c.Name, err))
		}
		c.ReturnTime = returnTime
	} else if prior == domain.LocationAway {
		e.completeReturn(ctx, prompter, c)
	}

	if target == domain.LocationShower {
		e.timers.CancelShower(c.ID)
		e.timers.ArmShower(c.ID, e.showerTimeout, e.showerExpired)
	} else if prior == domain.LocationShower {
		e.timers.CancelShower(c.ID)
	}

	e.roster.Place(c.ID, target)

	if target == domain.LocationAway {
		e.record(ctx, fmt.Sprintf("%s's location is %s (return %s)", c.Name, target, c.ReturnTime))
	} else {
		e.record(ctx, fmt.Sprintf("%s's location is %s", c.Name, target))
	}
	e.persist(ctx)

	metrics.TransitionsTotal.WithLabelValues(string(prior), string(target)).Inc()
	e.refreshGauges()
	e.log.Info().
		Str("client_id", c.ID).
		Str("from", string(prior)).
		Str("to", string(target)).
		Msg("client moved")

	return &ports.MoveResult{Client: c.Clone()}, nil
}

// rollback keeps a client whose departure was cancelled in the location
// they were dragged from.
func (e *Engine) rollback(c *domain.Client) {
	back := c.Location
	if !back.Valid() {
		back = domain.DefaultLocation
	}
	e.roster.Place(c.ID, back)
}

// completeReturn runs the return-from-away protocol. The screening answer
// is logged either way; it never blocks the return.
func (e *Engine) completeReturn(ctx context.Context, prompter ports.Prompter, c *domain.Client) {
	note := "NOT completed"
	if prompter.ConfirmSecurityScreening(ctx, c.Name) {
		note = "completed"
	}
	e.record(ctx, fmt.Sprintf("Security screening for %s %s", c.Name, note))
	c.ReturnTime = ""
	e.timers.CancelShower(c.ID)
}

// showerExpired runs when a shower timer fires. The client is looked up by
// id because they may have been discharged or moved since arming.
func (e *Engine) showerExpired(clientID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.roster.Get(clientID)
	if !ok || c.Location != domain.LocationShower {
		e.log.Debug().Str("client_id", clientID).Msg("stale shower timer ignored")
		return
	}
	metrics.ShowerTimeoutsTotal.Inc()
	e.log.Info().Str("client_id", clientID).Msg("shower time ended")
	e.dispatcher.NotifyShowerEnded(e.ctx, c.Name)
}

// runChecks is the check cycle callback: one notice and one log line for
// every client with checks enabled.
func (e *Engine) runChecks(at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	minutes := int(e.timers.Interval() / time.Minute)
	checked := 0
	for _, c := range e.roster.All() {
		if !c.ChecksEnabled {
			continue
		}
		e.dispatcher.NotifyCheckDue(e.ctx, c.Name)
		e.record(e.ctx, fmt.Sprintf("%d minute check for %s complete", minutes, c.Name))
		metrics.ChecksTotal.Inc()
		checked++
	}
	e.log.Debug().Time("boundary", at).Int("clients", checked).Msg("check cycle ran")
}
