package security

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateUserID returns a fresh opaque user identifier.
func GenerateUserID() string {
	return GenerateID("user")
}

// GenerateSessionToken returns a fresh opaque session token.
func GenerateSessionToken() string {
	return fmt.Sprintf("session_%s", hexUUID())
}

// GenerateID returns a prefixed opaque identifier with 12 hex characters,
// e.g. GenerateID("trader") -> "trader_1f2e3d4c5b6a".
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, hexUUID()[:12])
}

// hexUUID returns a random UUID as a 32-character lowercase hex string.
func hexUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
