package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crisiscenter/tracker/internal/core/domain"
	"github.com/crisiscenter/tracker/internal/core/ports"
	"github.com/crisiscenter/tracker/internal/infrastructure/storage"
)

const (
	collectionSnapshots = "roster_snapshots"
	rosterDocumentID    = "roster"
)

type rosterDocument struct {
	ID      string           `bson:"_id"`
	Clients []storage.Record `bson:"clients"`
	SavedAt time.Time        `bson:"saved_at"`
}

// RosterRepository stores the whole roster as a single document that is
// replaced on every save.
type RosterRepository struct {
	col *mongo.Collection
	now func() time.Time
	log zerolog.Logger
}

var _ ports.RosterRepository = (*RosterRepository)(nil)

func NewRosterRepository(db *mongo.Database, log zerolog.Logger) *RosterRepository {
	return &RosterRepository{
		col: db.Collection(collectionSnapshots),
		now: time.Now,
		log: log.With().Str("component", "roster_mongo").Logger(),
	}
}

// Save upserts the snapshot document.
func (r *RosterRepository) Save(ctx context.Context, clients []domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := rosterDocument{
		ID:      rosterDocumentID,
		Clients: storage.ToRecords(clients),
		SavedAt: r.now().UTC(),
	}
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": rosterDocumentID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replace roster snapshot: %w", err)
	}
	return nil
}

// Load returns the stored roster. Like the file backend it never fails: a
// missing or undecodable document yields an empty roster.
func (r *RosterRepository) Load(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc rosterDocument
	err := r.col.FindOne(ctx, bson.M{"_id": rosterDocumentID}).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warn().Err(err).Msg("roster snapshot unreadable")
		}
		return []domain.Client{}, nil
	}
	return storage.FromRecords(doc.Clients), nil
}
