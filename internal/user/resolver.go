package user

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ParseUserID converts a path-segment identifier into the store's native
// ObjectID. Anything that is not a syntactically valid ObjectID is
// rejected here, before any store call sees it.
func ParseUserID(raw string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.ObjectID{}, ErrInvalidUserID
	}
	return id, nil
}
