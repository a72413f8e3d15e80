package ovhapi

import (
	"crypto/sha1" //nolint:gosec // G505: the API mandates SHA-1 signatures
	"encoding/hex"
	"strings"
)

// SignaturePrefix marks the signature scheme version.
const SignaturePrefix = "$1$"

// Sign computes the X-Ovh-Signature value. fullURL must be the exact URL
// sent, query string included, and body the exact bytes sent ("" when the
// request has none).
func Sign(method, fullURL, body, timestamp, applicationSecret, consumerKey string) string {
	payload := strings.Join([]string{
		applicationSecret,
		consumerKey,
		strings.ToUpper(method),
		fullURL,
		body,
		timestamp,
	}, "+")
	sum := sha1.Sum([]byte(payload)) //nolint:gosec // G401
	return SignaturePrefix + hex.EncodeToString(sum[:])
}
