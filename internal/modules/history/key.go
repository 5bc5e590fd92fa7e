// README: Storage key derivation from free-text user names.
package history

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const maxSlugRunes = 48

// KeyFunc maps a user name to the identifier a backend stores the history under.
type KeyFunc func(user string) (string, error)

// Key derives a path-safe storage key: a readable slug of the name plus a
// short SHA-256 digest of the exact name, so distinct names never share a key.
func Key(user string) (string, error) {
	if strings.TrimSpace(user) == "" {
		return "", ErrInvalidUser
	}
	sum := sha256.Sum256([]byte(user))
	return slug(user) + "-" + hex.EncodeToString(sum[:])[:12], nil
}

// LegacyKey returns the raw name, matching files written as "<name>_history.json".
// Names that could leave the storage directory are rejected.
func LegacyKey(user string) (string, error) {
	if strings.TrimSpace(user) == "" {
		return "", ErrInvalidUser
	}
	if strings.ContainsAny(user, `/\`) || strings.Contains(user, "..") || strings.ContainsRune(user, 0) {
		return "", fmt.Errorf("%w: %q is not usable as a legacy file name", ErrInvalidUser, user)
	}
	return user, nil
}

func slug(user string) string {
	var b strings.Builder
	n := 0
	for _, r := range strings.ToLower(strings.TrimSpace(user)) {
		if n == maxSlugRunes {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
		n++
	}
	return b.String()
}
