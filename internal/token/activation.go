package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dtroode/videoflix-server/internal/model"
)

var _ model.ActivationCodec = (*ActivationCodec)(nil)

const activationKeySalt = "videoflix.activation-token"

// ActivationCodec issues link tokens of the form "<base36 unix time>-<hmac>".
// The HMAC covers the account ID, password hash and active flag, so changing
// any of them invalidates links issued earlier.
type ActivationCodec struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewActivationCodec creates a codec whose tokens are accepted for maxAge.
func NewActivationCodec(secret string, maxAge time.Duration) *ActivationCodec {
	key := sha256.Sum256([]byte(activationKeySalt + secret))
	return &ActivationCodec{
		key:    key[:],
		maxAge: maxAge,
		now:    time.Now,
	}
}

// MakeToken returns a token bound to the current state of account.
func (c *ActivationCodec) MakeToken(account model.Account) string {
	return c.makeToken(account, c.now().Unix())
}

// CheckToken reports whether token was issued for account in its current
// state and is not older than the codec's max age. Malformed input and
// timestamps in the future yield false.
func (c *ActivationCodec) CheckToken(account model.Account, token string) bool {
	tsPart, _, ok := strings.Cut(token, "-")
	if !ok || tsPart == "" {
		return false
	}

	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil || ts < 0 {
		return false
	}

	if !hmac.Equal([]byte(c.makeToken(account, ts)), []byte(token)) {
		return false
	}

	age := c.now().Sub(time.Unix(ts, 0))
	return age >= 0 && age <= c.maxAge
}

func (c *ActivationCodec) makeToken(account model.Account, ts int64) string {
	mac := hmac.New(sha256.New, c.key)
	fmt.Fprintf(mac, "%d|%s|%t|%d", account.ID, account.PasswordHash, account.IsActive, ts)
	sum := hex.EncodeToString(mac.Sum(nil))

	return strconv.FormatInt(ts, 36) + "-" + sum[:32]
}
