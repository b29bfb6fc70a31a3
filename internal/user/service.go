package user

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/jsd6-group5/project-backend/internal/auth"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// uploadsPrefix is the public path under which stored blobs are served.
const uploadsPrefix = "/uploads"

type Upload struct {
	Reader      io.Reader
	ContentType string
}

type Service struct {
	profiles ProfileStore
	activity ActivityStore
	blobs    BlobStore
}

func NewService(profiles ProfileStore, activity ActivityStore, blobs BlobStore) *Service {
	return &Service{
		profiles: profiles,
		activity: activity,
		blobs:    blobs,
	}
}

// Activity returns every activity document referencing the user, in
// insertion order. Zero matches is a valid result, not an error.
func (s *Service) Activity(ctx context.Context, userID bson.ObjectID) ([]Activity, error) {
	return s.activity.FindByUserID(ctx, userID)
}

// Profile returns the profile documents matching the id (zero or one).
// Callers handle the empty case; the password hash never leaves the
// entity in serialized form.
func (s *Service) Profile(ctx context.Context, userID bson.ObjectID) ([]Profile, error) {
	return s.profiles.FindByID(ctx, userID)
}

// ChangePassword hashes the new secret and sets only the passwordHash
// field on the matching document. A zero-match update succeeds silently.
func (s *Service) ChangePassword(ctx context.Context, userID bson.ObjectID, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.profiles.UpdateFields(ctx, userID, map[string]any{"passwordHash": hash})
}

// EditProfile persists the uploaded image first and only then issues a
// single partial update with the supplied fields plus the new image path.
// A failed blob save leaves the document untouched, so the profile never
// references bytes that were not stored.
func (s *Service) EditProfile(ctx context.Context, userID bson.ObjectID, cmd EditProfileCommand, upload *Upload) error {
	if upload == nil || upload.Reader == nil {
		return ErrMissingImage
	}

	name, err := s.blobs.Save(ctx, upload.Reader, upload.ContentType)
	if err != nil {
		return fmt.Errorf("save image: %w", err)
	}

	updates := cmd.ToUpdates()
	updates["imagePath"] = path.Join(uploadsPrefix, name)

	return s.profiles.UpdateFields(ctx, userID, updates)
}
