package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/crisiscenter/tracker/internal/core/domain"
	"github.com/crisiscenter/tracker/internal/core/ports"
)

const bedNone = "None"

// AddClient admits a new client into the default location.
func (e *Engine) AddClient(ctx context.Context, name, gender string) (*domain.Client, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	name = strings.TrimSpace(name)
	gender = strings.TrimSpace(gender)
	if name == "" || gender == "" {
		return nil, e.reject(ctx, "add", fmt.Errorf("%w: name and gender are required", domain.ErrInvalidInput))
	}
	if !e.catalog.HasGender(gender) {
		return nil, e.reject(ctx, "add", fmt.Errorf("%w: unknown gender %q", domain.ErrInvalidInput, gender))
	}

	c, err := e.roster.Add(domain.NewClient(e.newID(), name, gender))
	if err != nil {
		return nil, fmt.Errorf("add client %s: %w", name, err)
	}
	e.roster.Place(c.ID, domain.DefaultLocation)

	e.record(ctx, "INTAKE "+c.Name)
	e.persist(ctx)
	e.refreshGauges()

	e.log.Info().Str("client_id", c.ID).Msg("client admitted")
	out := c.Clone()
	return &out, nil
}

// UpdateClientInfo replaces every editable field of a client. The update is
// validated in full before anything is applied.
func (e *Engine) UpdateClientInfo(ctx context.Context, clientID string, in ports.ClientInfoInput) (*domain.Client, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.roster.Get(clientID)
	if !ok {
		return nil, fmt.Errorf("update client %s: %w", clientID, domain.ErrClientNotFound)
	}

	next, err := e.applyInfo(*c, in)
	if err != nil {
		return nil, e.reject(ctx, "update", fmt.Errorf("update client %s: %w", c.Name, err))
	}

	changes := diffClient(*c, next)
	*c = next

	if len(changes) > 0 {
		e.record(ctx, fmt.Sprintf("Updated %s's info: %s", c.Name, strings.Join(changes, "; ")))
	}
	e.persist(ctx)

	e.log.Info().Str("client_id", c.ID).Int("changes", len(changes)).Msg("client info updated")
	out := c.Clone()
	return &out, nil
}

// applyInfo returns prior with in applied, or the first validation error.
func (e *Engine) applyInfo(prior domain.Client, in ports.ClientInfoInput) (domain.Client, error) {
	next := prior.Clone()

	next.Name = strings.TrimSpace(in.Name)
	next.Gender = strings.TrimSpace(in.Gender)
	if next.Name == "" || next.Gender == "" {
		return prior, fmt.Errorf("%w: name and gender are required", domain.ErrInvalidInput)
	}
	if !e.catalog.HasGender(next.Gender) {
		return prior, fmt.Errorf("%w: unknown gender %q", domain.ErrInvalidInput, next.Gender)
	}

	bed := strings.TrimSpace(in.Bed)
	if bed == bedNone {
		bed = ""
	}
	if bed != "" {
		if !e.catalog.HasBed(bed) {
			return prior, fmt.Errorf("%w: %q", domain.ErrUnknownBed, bed)
		}
		if _, taken := e.roster.BedHolder(bed, prior.ID); taken {
			return prior, fmt.Errorf("%w: %s", domain.ErrBedTaken, bed)
		}
	}
	next.Bed = bed

	next.WakeupTime = ""
	if w := strings.TrimSpace(in.WakeupTime); w != "" {
		t, err := domain.ParseTimeOfDay(w)
		if err != nil {
			return prior, err
		}
		next.WakeupTime = t
	}

	if prior.IsAway() {
		if r := strings.TrimSpace(in.ReturnTime); r != "" {
			t, err := domain.ParseTimeOfDay(r)
			if err != nil {
				return prior, err
			}
			next.ReturnTime = t
		}
	}

	next.ChecksEnabled = in.ChecksEnabled
	next.ApprovedContacts = in.ApprovedContacts
	next.PropertyHeld = domain.NormalizeProperty(in.PropertyHeld)
	return next, nil
}

// diffClient lists the fields that differ between two versions of a client.
func diffClient(before, after domain.Client) []string {
	var changes []string
	if before.Name != after.Name {
		changes = append(changes, fmt.Sprintf("name from %s to %s", before.Name, after.Name))
	}
	fields := []struct {
		key     string
		changed bool
	}{
		{"gender", before.Gender != after.Gender},
		{"bed", before.Bed != after.Bed},
		{"checks", before.ChecksEnabled != after.ChecksEnabled},
		{"contacts", before.ApprovedContacts != after.ApprovedContacts},
		{"return_time", before.ReturnTime != after.ReturnTime},
		{"wakeup_time", before.WakeupTime != after.WakeupTime},
	}
	for _, f := range fields {
		if f.changed {
			changes = append(changes, f.key+" changed")
		}
	}
	for _, k := range domain.PropertyKeys {
		if before.PropertyHeld[k] != after.PropertyHeld[k] {
			changes = append(changes, "property "+k+" changed")
		}
	}
	return changes
}

// DischargeClient removes a client from the facility, freeing their bed and
// cancelling any shower timer.
func (e *Engine) DischargeClient(ctx context.Context, clientID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.roster.Remove(clientID)
	if !ok {
		return fmt.Errorf("discharge client %s: %w", clientID, domain.ErrClientNotFound)
	}
	e.timers.CancelShower(clientID)

	e.record(ctx, "DISCHARGE "+c.Name)
	e.persist(ctx)
	e.refreshGauges()

	e.log.Info().Str("client_id", clientID).Msg("client discharged")
	return nil
}

// AvailableBeds returns the catalog beds not held by any client. excluding
// is treated as free so an edit form can offer a client their own bed.
func (e *Engine) AvailableBeds(excluding string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	taken := e.roster.TakenBeds(excluding)
	beds := make([]string, 0, len(e.catalog.Beds))
	for _, b := range e.catalog.Beds {
		if !taken[b] {
			beds = append(beds, b)
		}
	}
	return beds
}

// RecordEvent writes a free-form facility event to the activity log.
func (e *Engine) RecordEvent(ctx context.Context, eventType, comments string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	eventType = strings.TrimSpace(eventType)
	if eventType == "" {
		return e.reject(ctx, "event", fmt.Errorf("%w: event type is required", domain.ErrInvalidInput))
	}
	known := false
	for _, t := range domain.EventTypes {
		if t == eventType {
			known = true
			break
		}
	}
	if !known {
		return e.reject(ctx, "event", fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidInput, eventType))
	}

	msg := "Event " + eventType
	if comments = strings.TrimSpace(comments); comments != "" {
		msg += ": " + comments
	}
	e.record(ctx, msg)
	return nil
}
