// Package token issues and checks the short-lived confirmation codes that
// the signup flow emails out. Codes are never stored: each one is an HMAC
// over a timestamp and a hash of the user's persisted state, so changing
// any bound field (username, email, role, updated_at) invalidates every
// outstanding code for that user.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// keySalt separates the code-signing key from other uses of the app secret.
	keySalt = "reviewdb.confirmation-code"

	keyIterations = 4096
	keyLength     = 32

	// sigLength is the number of hex chars of the HMAC kept in the code.
	sigLength = 20
)

// UserState carries the persisted fields a confirmation code is bound to.
type UserState struct {
	ID        int64
	Username  string
	Email     string
	Role      string
	UpdatedAt time.Time
}

// Generator creates and verifies state-bound confirmation codes.
type Generator struct {
	key []byte
	ttl time.Duration
	// now is swappable for expiry tests
	now func() time.Time
}

func NewGenerator(secret string, ttl time.Duration) *Generator {
	return &Generator{
		key: pbkdf2.Key([]byte(secret), []byte(keySalt), keyIterations, keyLength, sha256.New),
		ttl: ttl,
		now: time.Now,
	}
}

// MakeCode returns a code of the form <base36 timestamp>-<truncated hmac>.
func (g *Generator) MakeCode(st UserState) string {
	ts := g.now().Unix()
	return fmt.Sprintf("%s-%s", strconv.FormatInt(ts, 36), g.sign(ts, st))
}

// CheckCode reports whether code is genuine, unexpired and bound to the
// user's current state. It never reveals which check failed.
func (g *Generator) CheckCode(st UserState, code string) bool {
	tsPart, sigPart, ok := strings.Cut(code, "-")
	if !ok {
		return false
	}

	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil {
		return false
	}

	if !hmac.Equal([]byte(g.sign(ts, st)), []byte(sigPart)) {
		return false
	}

	age := g.now().Unix() - ts
	return age >= 0 && time.Duration(age)*time.Second <= g.ttl
}

func (g *Generator) sign(ts int64, st UserState) string {
	mac := hmac.New(sha256.New, g.key)
	fmt.Fprintf(mac, "%d|%s", ts, stateHash(st))
	return hex.EncodeToString(mac.Sum(nil))[:sigLength]
}

// stateHash digests the fields whose mutation must revoke outstanding codes.
func stateHash(st UserState) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d\x00%s\x00%s\x00%s\x00%d",
		st.ID, st.Username, st.Email, st.Role, st.UpdatedAt.UTC().UnixNano())
	return hex.EncodeToString(h.Sum(nil))
}
