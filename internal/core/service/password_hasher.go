package service

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor for newly stored passwords.
const hashCost = 10

// PasswordHasher wraps bcrypt hashing and verification of plaintext
// passwords. bcrypt salts every hash, so hashing the same plaintext twice
// yields different stored values that both verify.
type PasswordHasher struct{}

func NewPasswordHasher() PasswordHasher {
	return PasswordHasher{}
}

func (PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// stored hash verifies false rather than erroring, since this gates login
// rejection.
func (PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
