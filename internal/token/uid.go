package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedUID = errors.New("malformed uid")

// EncodeUID encodes an account ID for use in activation links.
func EncodeUID(accountID int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(accountID, 10)))
}

// DecodeUID reverses EncodeUID. Padded input is accepted.
func DecodeUID(uid string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(uid, "="))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedUID, err)
	}

	accountID, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || accountID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedUID, raw)
	}

	return accountID, nil
}
