package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSameSite(t *testing.T) {
	tests := map[string]http.SameSite{
		"":        http.SameSiteLaxMode,
		"Lax":     http.SameSiteLaxMode,
		" strict": http.SameSiteStrictMode,
		"NONE":    http.SameSiteNoneMode,
		"bogus":   http.SameSiteLaxMode,
	}

	for in, want := range tests {
		assert.Equal(t, want, parseSameSite(in), in)
	}
}

func TestBuildCookie(t *testing.T) {
	cfg := CookieConfig{Domain: "videoflix.test", SameSite: "strict", Secure: true}

	ck := buildCookie(cfg, "access_token", "v", time.Minute, testNow)

	assert.Equal(t, "videoflix.test", ck.Domain)
	assert.Equal(t, 60, ck.MaxAge)
	assert.Equal(t, testNow.Add(time.Minute), ck.Expires)
	assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
	assert.True(t, ck.HttpOnly)

	session := buildCookie(CookieConfig{}, "access_token", "v", 0, testNow)
	assert.Zero(t, session.MaxAge)
	assert.True(t, session.Expires.IsZero())
}

func TestBuildDeletionCookie(t *testing.T) {
	ck := buildDeletionCookie(CookieConfig{Secure: true}, "refresh_token")

	assert.Empty(t, ck.Value)
	assert.Equal(t, -1, ck.MaxAge)
	assert.True(t, ck.Expires.Before(time.Unix(1, 0)))
	assert.True(t, ck.Secure)
}
