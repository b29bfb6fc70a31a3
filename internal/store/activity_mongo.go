package store

import (
	"context"
	"fmt"

	"github.com/jsd6-group5/project-backend/internal/user"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type ActivityMongo struct {
	coll *mongo.Collection
}

func NewActivityMongo(db *mongo.Database) *ActivityMongo {
	return &ActivityMongo{coll: db.Collection("user-activity")}
}

// FindByUserID returns the user's activity documents in natural
// (insertion) order, unfiltered and unpaginated.
func (s *ActivityMongo) FindByUserID(ctx context.Context, userID bson.ObjectID) ([]user.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	defer cursor.Close(ctx)

	var activity []user.Activity
	if err := cursor.All(ctx, &activity); err != nil {
		return nil, fmt.Errorf("decode activity: %w", err)
	}
	return activity, nil
}
