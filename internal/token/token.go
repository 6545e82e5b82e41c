package token

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Delimiter separates the token fields. Usernames containing it would corrupt
// the split-based parser, so they are rejected at account creation.
const Delimiter = ":"

// Lifetime is how long an issued token stays valid. There is no revocation;
// expiry is the only thing that kills a signed token.
const Lifetime = 24 * time.Hour

// Claims is the verified content of a signed token.
type Claims struct {
	Username  string
	ExpiresAt int64 // epoch millis
}

// Codec issues and verifies self-contained signed tokens of the form
// username:expiresAtMs:signature. Anyone holding the secret can verify a
// token without a store lookup.
type Codec struct {
	secret string
	now    func() time.Time
}

// NewCodec creates a codec signing with the given secret.
func NewCodec(secret string) *Codec {
	return NewCodecAt(secret, time.Now)
}

// NewCodecAt is NewCodec with an injected clock, for deterministic tests.
func NewCodecAt(secret string, now func() time.Time) *Codec {
	return &Codec{secret: secret, now: now}
}

// Issue creates a signed token for the username, valid for Lifetime.
func (c *Codec) Issue(username string) string {
	expiresAt := c.now().Add(Lifetime).UnixMilli()
	payload := username + Delimiter + strconv.FormatInt(expiresAt, 10)
	return payload + Delimiter + c.sign(payload)
}

// Verify checks a token's signature and expiry. It is total over token
// strings: every failure mode reports ok=false, nothing panics or errors.
func (c *Codec) Verify(tok string) (Claims, bool) {
	parts := strings.Split(tok, Delimiter)
	if len(parts) != 3 {
		return Claims{}, false
	}
	username, expiresAtStr, signature := parts[0], parts[1], parts[2]

	expected := c.sign(username + Delimiter + expiresAtStr)
	if subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) != 1 {
		return Claims{}, false
	}

	expiresAt, err := strconv.ParseInt(expiresAtStr, 10, 64)
	if err != nil {
		return Claims{}, false
	}
	if expiresAt < c.now().UnixMilli() {
		return Claims{}, false
	}

	return Claims{Username: username, ExpiresAt: expiresAt}, true
}

func (c *Codec) sign(payload string) string {
	sum := sha256.Sum256([]byte(payload + Delimiter + c.secret))
	return hex.EncodeToString(sum[:])
}
