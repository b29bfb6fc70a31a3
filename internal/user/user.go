package user

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Profile is one document in the user-info collection. The password hash
// is persisted but never serialized into a response.
type Profile struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string        `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Email        string        `bson:"email,omitempty" json:"email,omitempty"`
	Phone        string        `bson:"phone,omitempty" json:"phone,omitempty"`
	ImagePath    string        `bson:"imagePath,omitempty" json:"imagePath,omitempty"`
	PasswordHash string        `bson:"passwordHash,omitempty" json:"-"`
}

// Activity is one document in the user-activity collection. Event
// attributes are opaque to this service, so the document is kept as a map
// and passed through unchanged.
type Activity map[string]any

type EditProfileCommand struct {
	FullName *string
	Email    *string
	Phone    *string
}

// ToUpdates returns only the fields actually supplied, so omitted fields
// are left untouched by the store's partial update.
func (c *EditProfileCommand) ToUpdates() map[string]any {
	updates := make(map[string]any)
	if c.FullName != nil {
		updates["fullName"] = *c.FullName
	}
	if c.Email != nil {
		updates["email"] = *c.Email
	}
	if c.Phone != nil {
		updates["phone"] = *c.Phone
	}
	return updates
}
