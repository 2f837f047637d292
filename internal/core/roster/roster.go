// Package roster is the in-memory source of truth for tracked clients: an
// insertion-ordered collection plus a per-location membership index.
//
// A Store is not safe for concurrent use. The transition engine is its only
// writer and serialises access.
package roster

import (
	"fmt"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

// Store holds every tracked client.
type Store struct {
	order   []string
	byID    map[string]*domain.Client
	members map[domain.Location][]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		byID:    make(map[string]*domain.Client),
		members: make(map[domain.Location][]string),
	}
}

// Add inserts a copy of c at the end of the roster. The client is not a
// member of any location until Place is called.
func (s *Store) Add(c domain.Client) (*domain.Client, error) {
	if _, exists := s.byID[c.ID]; exists {
		return nil, fmt.Errorf("roster add %s: %w", c.ID, domain.ErrDuplicateID)
	}
	stored := c.Clone()
	s.byID[c.ID] = &stored
	s.order = append(s.order, c.ID)
	return &stored, nil
}

// Get returns the live client record for id.
func (s *Store) Get(id string) (*domain.Client, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Remove deletes the client from the roster and from whatever location
// holds it, returning the removed record.
func (s *Store) Remove(id string) (domain.Client, bool) {
	c, ok := s.byID[id]
	if !ok {
		return domain.Client{}, false
	}
	s.unplace(id)
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return *c, true
}

// Place makes loc the client's only location, updating both the client
// record and the membership index.
func (s *Store) Place(id string, loc domain.Location) {
	c, ok := s.byID[id]
	if !ok {
		return
	}
	s.unplace(id)
	s.members[loc] = append(s.members[loc], id)
	c.Location = loc
}

// IsMember reports whether the membership index lists id under loc.
func (s *Store) IsMember(id string, loc domain.Location) bool {
	for _, mid := range s.members[loc] {
		if mid == id {
			return true
		}
	}
	return false
}

// Members returns the ids placed in loc, in arrival order.
func (s *Store) Members(loc domain.Location) []string {
	return append([]string(nil), s.members[loc]...)
}

// Len returns the number of tracked clients.
func (s *Store) Len() int { return len(s.order) }

// All returns the live client records in roster order.
func (s *Store) All() []*domain.Client {
	out := make([]*domain.Client, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Snapshot returns deep copies of every client in roster order.
func (s *Store) Snapshot() []domain.Client {
	out := make([]domain.Client, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out
}

// BedHolder returns the id of the client other than exceptID that holds
// bed.
func (s *Store) BedHolder(bed, exceptID string) (string, bool) {
	if bed == "" {
		return "", false
	}
	for _, id := range s.order {
		if id != exceptID && s.byID[id].Bed == bed {
			return id, true
		}
	}
	return "", false
}

// TakenBeds returns every assigned bed except excluding.
func (s *Store) TakenBeds(excluding string) map[string]bool {
	taken := make(map[string]bool)
	for _, c := range s.byID {
		if c.Bed != "" && c.Bed != excluding {
			taken[c.Bed] = true
		}
	}
	return taken
}

func (s *Store) unplace(id string) {
	for loc, ids := range s.members {
		for i, mid := range ids {
			if mid == id {
				s.members[loc] = append(ids[:i], ids[i+1:]...)
				return
			}
		}
	}
}
