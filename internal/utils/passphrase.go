package utils

import "golang.org/x/crypto/bcrypt"

// HashPassphrase returns the bcrypt hash of the shared admin
// passphrase using the given cost.
func HashPassphrase(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassphrase safely compares a bcrypt hash and a submitted
// passphrase.
func VerifyPassphrase(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
