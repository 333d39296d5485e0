package identity

import (
	"crypto/rand"
	"encoding/base64"
)

// NewClientID - generates a stable client identifier for connections that
// did not bring their own. The client is expected to persist it and send
// it back on every reconnect.
func NewClientID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-client-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}
