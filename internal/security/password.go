package security

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest of pw at the given cost.
func HashPassword(pw string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	return string(b), err
}

// ComparePassword returns nil when pw matches the stored digest.
func ComparePassword(hash, pw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}
