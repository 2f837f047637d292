// Package storage holds the persisted shape of a client shared by the
// snapshot backends.
package storage

import (
	"github.com/google/uuid"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

// Record is one client as stored in a roster snapshot. Unset times are
// written as null.
type Record struct {
	ID         string          `json:"id,omitempty" bson:"id,omitempty"`
	Name       string          `json:"name" bson:"name"`
	Gender     string          `json:"gender" bson:"gender"`
	Bed        string          `json:"bed" bson:"bed"`
	Checks     bool            `json:"checks" bson:"checks"`
	Contacts   string          `json:"contacts" bson:"contacts"`
	Property   map[string]bool `json:"property" bson:"property"`
	ReturnTime *string         `json:"return_time" bson:"return_time"`
	WakeupTime *string         `json:"wakeup_time" bson:"wakeup_time"`
	Location   string          `json:"location" bson:"location"`
}

// ToRecords converts clients for storage.
func ToRecords(clients []domain.Client) []Record {
	out := make([]Record, 0, len(clients))
	for _, c := range clients {
		out = append(out, Record{
			ID:         c.ID,
			Name:       c.Name,
			Gender:     c.Gender,
			Bed:        c.Bed,
			Checks:     c.ChecksEnabled,
			Contacts:   c.ApprovedContacts,
			Property:   domain.NormalizeProperty(c.PropertyHeld),
			ReturnTime: optional(c.ReturnTime),
			WakeupTime: optional(c.WakeupTime),
			Location:   string(c.Location),
		})
	}
	return out
}

// FromRecords rebuilds clients from stored records. Missing property
// categories default to false, unknown locations resolve to the default
// location, and records without an id get a fresh one.
func FromRecords(records []Record) []domain.Client {
	out := make([]domain.Client, 0, len(records))
	for _, r := range records {
		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, domain.Client{
			ID:               id,
			Name:             r.Name,
			Gender:           r.Gender,
			Bed:              r.Bed,
			ChecksEnabled:    r.Checks,
			ApprovedContacts: r.Contacts,
			PropertyHeld:     domain.NormalizeProperty(r.Property),
			ReturnTime:       deref(r.ReturnTime),
			WakeupTime:       deref(r.WakeupTime),
			Location:         domain.ParseLocation(r.Location),
		})
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
