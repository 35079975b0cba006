package models

import "time"

// RecordKind tells which part of the journal an encrypted record belongs to.
// The core never looks inside the plaintext, but it needs the kind to decide
// which blind tokens a record carries.
type RecordKind string

const (
	// KindEntryBody is the (rich-text) body of a journal entry.
	// Entry bodies carry full-text search tokens.
	KindEntryBody RecordKind = "entry_body"

	// KindTopicName is the name of a topic. Topic names carry a single
	// exact-match name token.
	KindTopicName RecordKind = "topic_name"

	// KindCustomField is a serialized structured field value.
	// Custom fields are not indexed.
	KindCustomField RecordKind = "custom_field"
)

// Valid reports whether k is one of the known record kinds.
func (k RecordKind) Valid() bool {
	switch k {
	case KindEntryBody, KindTopicName, KindCustomField:
		return true
	}
	return false
}

// BlindToken is a fixed-length keyed digest of a normalized plaintext
// fragment, hex-encoded. Storage can index and compare tokens without
// learning the plaintext they were derived from.
type BlindToken string

// EncryptedRecord is a single encrypted value owned by an account together
// with the blind tokens that make it searchable.
type EncryptedRecord struct {
	ID        string        `json:"id"`
	Kind      RecordKind    `json:"kind"`
	Blob      EncryptedBlob `json:"blob"`
	Tokens    []BlindToken  `json:"tokens,omitempty"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}

// DecryptedRecord is a record opened on the client for display. It never
// leaves the process.
type DecryptedRecord struct {
	ID   string
	Kind RecordKind
	// Text is the plaintext, or a placeholder when Readable is false.
	Text     string
	Readable bool
}
