package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Sign computes the signature Shopify attaches to webhook deliveries:
// base64(HMAC-SHA256(body)) keyed by the shared webhook secret.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify reports whether hmacHeader is a valid signature over body.
// The body must be the exact raw bytes received on the wire; re-serialized
// JSON is not guaranteed byte-identical to what the sender signed.
// The comparison is constant-time.
func Verify(body []byte, hmacHeader, secret string) bool {
	if hmacHeader == "" {
		return false
	}
	expected := Sign(body, secret)
	return hmac.Equal([]byte(expected), []byte(hmacHeader))
}
