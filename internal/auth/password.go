package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCost is fixed for the deployment. bcrypt embeds the cost in each
// hash, so stored hashes keep verifying even if this value changes later.
const HashCost = 12

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
