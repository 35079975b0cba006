package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
)

const namespacePrefix = "acct_"

var namespacePattern = regexp.MustCompile(`^acct_[0-9a-f]{24}$`)

// NamespaceFor derives the storage namespace of accountID. The result is
// stable, contains only [a-z0-9_] and reveals nothing readable about the
// account ID, so it is safe to use as a schema or table-name prefix.
func NamespaceFor(accountID string) string {
	sum := sha256.Sum256([]byte(accountID))
	return namespacePrefix + hex.EncodeToString(sum[:12])
}

// ValidateNamespace checks that ns has the shape produced by NamespaceFor.
// Namespaces read back from the database are checked again before being
// spliced into DDL or table names.
func ValidateNamespace(ns string) error {
	if !namespacePattern.MatchString(ns) {
		return fmt.Errorf("%w: %q", ErrInvalidNamespace, ns)
	}
	return nil
}
