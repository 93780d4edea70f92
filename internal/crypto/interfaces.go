package crypto

// PasswordHasher is the credential store of the application. It turns
// plaintext passwords into salted one-way hashes and verifies presented
// passwords against stored hashes.
//
// Implementations must use a random per-call salt, so hashing the same
// plaintext twice produces two different outputs, and must compare in a
// timing-safe manner. Plaintext is never stored or logged.
type PasswordHasher interface {
	// Hash derives a salted one-way hash from the plaintext password.
	// Returns an error if the plaintext is empty or hashing fails.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the previously stored hash.
	// The comparison is constant-time with respect to the hash contents.
	Verify(plaintext, hash string) bool
}
