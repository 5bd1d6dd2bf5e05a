package handler

import (
	"net/http"
	"strings"
	"time"
)

func parseSameSite(s string) http.SameSite {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func buildCookie(cfg CookieConfig, name, value string, ttl time.Duration, now time.Time) *http.Cookie {
	ck := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   strings.TrimSpace(cfg.Domain),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: parseSameSite(cfg.SameSite),
	}
	if ttl > 0 {
		ck.Expires = now.Add(ttl).UTC()
		ck.MaxAge = int(ttl.Seconds())
	}
	return ck
}

func buildDeletionCookie(cfg CookieConfig, name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   strings.TrimSpace(cfg.Domain),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: parseSameSite(cfg.SameSite),
		Expires:  time.Unix(0, 0).UTC(),
		MaxAge:   -1,
	}
}
