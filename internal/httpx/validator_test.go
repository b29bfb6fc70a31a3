package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleReq struct {
	NewPassword string `json:"newPassword" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
}

func TestValidateStruct_Valid(t *testing.T) {
	details := ValidateStruct(sampleReq{NewPassword: "s3cr3t"})
	assert.Nil(t, details)
}

func TestValidateStruct_MissingRequired(t *testing.T) {
	details := ValidateStruct(sampleReq{})

	assert.Len(t, details, 1)
	assert.Equal(t, "newPassword", details[0].Field)
	assert.Contains(t, details[0].Message, "required")
}

func TestValidateStruct_InvalidEmail(t *testing.T) {
	details := ValidateStruct(sampleReq{NewPassword: "s3cr3t", Email: "not-an-email"})

	assert.Len(t, details, 1)
	assert.Equal(t, "email", details[0].Field)
}
