package notification

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/dtroode/videoflix-server/internal/model"
)

var ErrUnknownKind = errors.New("unknown notification kind")

// Composer renders notifications into plain-text emails with front-end links.
type Composer struct {
	activateURL string
	resetURL    string
}

func NewComposer(activateURL, resetURL string) *Composer {
	return &Composer{activateURL: activateURL, resetURL: resetURL}
}

func (c *Composer) Compose(n model.Notification) (model.EmailMessage, error) {
	switch n.Kind {
	case model.NotificationActivation:
		link, err := buildLink(c.activateURL, n.Params)
		if err != nil {
			return model.EmailMessage{}, err
		}
		return model.EmailMessage{
			To:      n.Email,
			Subject: "Confirm your email",
			Body:    "Please activate your account: " + link,
		}, nil
	case model.NotificationPasswordReset:
		link, err := buildLink(c.resetURL, n.Params)
		if err != nil {
			return model.EmailMessage{}, err
		}
		return model.EmailMessage{
			To:      n.Email,
			Subject: "Reset your Password",
			Body:    "Reset your password using the link: " + link,
		}, nil
	default:
		return model.EmailMessage{}, fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind)
	}
}

func buildLink(base string, params map[string]string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse link base %q: %w", base, err)
	}

	q := u.Query()
	q.Set("uid", params["uid"])
	q.Set("token", params["token"])
	u.RawQuery = q.Encode()

	return u.String(), nil
}
