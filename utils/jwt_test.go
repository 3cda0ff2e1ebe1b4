package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestAuthority(clock clockwork.Clock) *TokenAuthority {
	return NewTokenAuthority(TokenAuthorityConfig{
		Username: "admin",
		Password: "s3cret",
		Secret:   testSecret,
		Issuer:   "npega",
		TTL:      30 * time.Minute,
	}, clock)
}

func TestIssue_ValidCredentials(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))
	a := newTestAuthority(clock)

	token, expiresAt, err := a.Issue("admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, clock.Now().Add(30*time.Minute), expiresAt)

	identity, err := a.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", identity)
}

func TestIssue_WrongCredentialsAreIndistinguishable(t *testing.T) {
	a := newTestAuthority(clockwork.NewFakeClock())

	cases := []struct{ name, user, pass string }{
		{"wrong username", "root", "s3cret"},
		{"wrong password", "admin", "nope"},
		{"both wrong", "root", "nope"},
		{"empty", "", ""},
		{"prefix of password", "admin", "s3c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, _, err := a.Issue(tc.user, tc.pass)
			assert.ErrorIs(t, err, ErrUnauthorized)
			assert.Equal(t, ErrUnauthorized, err)
			assert.Empty(t, token)
		})
	}
}

func TestVerify_ExpiresAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))
	a := newTestAuthority(clock)

	token, _, err := a.Issue("admin", "s3cret")
	require.NoError(t, err)

	clock.Advance(29 * time.Minute)
	_, err = a.Verify(token)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = a.Verify(token)
	assert.Equal(t, ErrUnauthorized, err)
}

func TestVerify_RejectsTampering(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))
	a := newTestAuthority(clock)
	now := clock.Now()

	sign := func(method jwt.SigningMethod, key any, claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	claims := func(sub, iss string, exp *jwt.NumericDate) jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    iss,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: exp,
		}
	}
	later := jwt.NewNumericDate(now.Add(time.Hour))

	valid, _, err := a.Issue("admin", "s3cret")
	require.NoError(t, err)

	cases := map[string]string{
		"empty":          "",
		"garbage":        "not-a-token",
		"truncated":      valid[:len(valid)-4],
		"other secret":   sign(jwt.SigningMethodHS256, []byte("another-secret-another-secret-xx"), claims("admin", "npega", later)),
		"other identity": sign(jwt.SigningMethodHS256, []byte(testSecret), claims("mallory", "npega", later)),
		"other issuer":   sign(jwt.SigningMethodHS256, []byte(testSecret), claims("admin", "elsewhere", later)),
		"no expiry":      sign(jwt.SigningMethodHS256, []byte(testSecret), claims("admin", "npega", nil)),
		"alg none":       sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, claims("admin", "npega", later)),
		"hs512":          sign(jwt.SigningMethodHS512, []byte(testSecret), claims("admin", "npega", later)),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			identity, err := a.Verify(token)
			assert.Equal(t, ErrUnauthorized, err)
			assert.Empty(t, identity)
		})
	}
}
