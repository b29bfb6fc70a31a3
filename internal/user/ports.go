package user

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ProfileStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) ([]Profile, error)
	UpdateFields(ctx context.Context, id bson.ObjectID, updates map[string]any) error
}

type ActivityStore interface {
	FindByUserID(ctx context.Context, userID bson.ObjectID) ([]Activity, error)
}

// BlobStore persists an uploaded binary under a generated name and
// returns that name. The name is unique per call, never derived from a
// caller-supplied filename.
type BlobStore interface {
	Save(ctx context.Context, r io.Reader, contentType string) (string, error)
}

var (
	ErrInvalidUserID = errors.New("invalid user id")
	ErrEmptyPassword = errors.New("new password is required")
	ErrMissingImage  = errors.New("image file is required")
)
