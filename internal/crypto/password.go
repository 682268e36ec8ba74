package crypto

import "golang.org/x/crypto/bcrypt"

// Work factor fixed at 10: bounded compute per login while still resisting
// offline brute force.
const passwordCost = 10

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword never returns an error: a malformed digest behaves exactly
// like a mismatch.
func CheckPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
