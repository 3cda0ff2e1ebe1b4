package utils

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

// ErrUnauthorized is the only error Verify and Issue report. Callers never
// learn which check failed.
var ErrUnauthorized = errors.New("unauthorized")

// Claims is the payload of an admin token. Subject carries the identity.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenAuthority issues and verifies HS256 tokens for the single configured
// admin identity.
type TokenAuthority struct {
	username string
	password string
	secret   []byte
	issuer   string
	ttl      time.Duration
	clock    clockwork.Clock
}

type TokenAuthorityConfig struct {
	Username string
	Password string
	Secret   string
	Issuer   string
	TTL      time.Duration
}

func NewTokenAuthority(cfg TokenAuthorityConfig, clock clockwork.Clock) *TokenAuthority {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &TokenAuthority{
		username: cfg.Username,
		password: cfg.Password,
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		ttl:      cfg.TTL,
		clock:    clock,
	}
}

func (a *TokenAuthority) TTL() time.Duration { return a.ttl }

// Issue returns a signed token when both username and password match.
func (a *TokenAuthority) Issue(username, password string) (string, time.Time, error) {
	// compare both fields every time so timing does not reveal which one was wrong
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	if userOK&passOK != 1 {
		return "", time.Time{}, ErrUnauthorized
	}

	now := a.clock.Now()
	expiresAt := now.Add(a.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.username,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Verify checks signature, expiry, issuer and identity and returns the
// identity the token asserts.
func (a *TokenAuthority) Verify(tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", ErrUnauthorized
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(a.issuer),
		jwt.WithTimeFunc(a.clock.Now),
	)
	if err != nil || !token.Valid {
		return "", ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(claims.Subject), []byte(a.username)) != 1 {
		return "", ErrUnauthorized
	}
	return claims.Subject, nil
}
