package crypto

import "github.com/MKhiriev/go-journal-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a password and a per-account salt into an [AccountKey].
// It knows nothing about storage, sessions or users.
//
// Flow at signup:
//
//	salt     = GenerateSalt()
//	key      = Derive(password, salt, DefaultParams())
//	verifier = NewVerifier(key)            (stored on the server with salt)
//
// Flow at unlock:
//
//	key = Derive(password, credential.Salt, credential.KDF)
//	ok  = Verify(key, credential.Verifier)
type KeyDeriver interface {
	// GenerateSalt returns 16 fresh random bytes. It is called exactly once at
	// signup and once per password change.
	GenerateSalt() ([]byte, error)

	// Derive runs Argon2id over password and salt. The same inputs always
	// produce the same key. Returns ErrDerivationParamsInvalid for malformed
	// params or a salt that is too short.
	Derive(password string, salt []byte, params models.KDFParams) (AccountKey, error)

	// DefaultParams returns the parameters new credentials are created with.
	DefaultParams() models.KDFParams

	// NewVerifier computes the password verifier stored in the credential.
	NewVerifier(key AccountKey) []byte

	// Verify reports whether key matches verifier, in constant time.
	Verify(key AccountKey, verifier []byte) bool
}

// Cipher encrypts and decrypts opaque string payloads under an account key
// using an authenticated mode.
type Cipher interface {
	// Encrypt seals plaintext under key with a fresh random IV.
	Encrypt(plaintext string, key AccountKey) (models.EncryptedBlob, error)

	// Decrypt opens blob under key. Any failure (wrong key, malformed IV or
	// ciphertext, tag mismatch) is reported as ErrDecryptionFailed; partial
	// plaintext is never returned.
	Decrypt(blob models.EncryptedBlob, key AccountKey) (string, error)
}

// BlindIndexer derives deterministic, non-reversible search tokens from
// plaintext under an account key. The same normalization is applied at write
// time and at query time.
type BlindIndexer interface {
	// Tokenize returns the sorted, de-duplicated set of word tokens of text.
	Tokenize(text string, key AccountKey) []models.BlindToken

	// NameToken returns the exact-match token of a whole name, or an empty
	// token when the normalized name is empty.
	NameToken(name string, key AccountKey) models.BlindToken
}
