package hash

import "golang.org/x/crypto/bcrypt"

// Cost is fixed at bcrypt's default (10 rounds). The salt is generated
// per call, so hashing the same password twice yields different digests.
const cost = bcrypt.DefaultCost

func Password(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A mismatch
// or malformed digest returns false, never an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
