// Package service defines interfaces for domain capabilities implemented in infra:
// hashing, tokens, storage, documents, notifications and queues.
package service

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
