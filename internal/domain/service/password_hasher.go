// Package service declares the infrastructure capabilities the use cases depend on.
package service

// PasswordHasher stores and verifies customer passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
