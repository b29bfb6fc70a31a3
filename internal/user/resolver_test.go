package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseUserID_Valid(t *testing.T) {
	raw := bson.NewObjectID().Hex()

	id, err := ParseUserID(raw)

	assert.NoError(t, err)
	assert.Equal(t, raw, id.Hex())
}

func TestParseUserID_Rejects(t *testing.T) {
	invalid := []string{
		"",
		"not-an-id",
		"1234",
		"zzzzzzzzzzzzzzzzzzzzzzzz",   // right length, not hex
		"5f9f1b9b9b9b9b9b9b9b9b9b9b", // too long
		"<script>alert(1)</script>",
	}

	for _, raw := range invalid {
		_, err := ParseUserID(raw)
		assert.ErrorIs(t, err, ErrInvalidUserID, "input %q", raw)
	}
}
