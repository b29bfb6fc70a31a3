package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jsd6-group5/project-backend/internal/user"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// queryTimeout bounds every store call so a stalled driver surfaces as a
// retryable failure instead of hanging the request.
const queryTimeout = 5 * time.Second

type ProfileMongo struct {
	coll *mongo.Collection
}

func NewProfileMongo(db *mongo.Database) *ProfileMongo {
	return &ProfileMongo{coll: db.Collection("user-info")}
}

func (s *ProfileMongo) FindByID(ctx context.Context, id bson.ObjectID) ([]user.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := s.coll.Find(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []user.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, nil
}

// UpdateFields issues one $set with exactly the supplied fields. A
// zero-match filter is a silent no-op, matching the read semantics.
func (s *ProfileMongo) UpdateFields(ctx context.Context, id bson.ObjectID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates}); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
