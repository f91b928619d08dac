// Package service declares the outbound ports the usecases depend on.
package service

// PasswordHasher hashes and verifies admin passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool

	// NeedsRehash reports whether hash was produced with different parameters
	// than the hasher currently uses. Unparseable hashes need a rehash.
	NeedsRehash(hash string) bool
}
