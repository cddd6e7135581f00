// Package flash carries one-shot notices and rejected form values from a
// redirecting POST to the page that follows it, in a signed cookie.
package flash

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

// Categories understood by the page layouts.
const (
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

const (
	defaultCookieName = "fyyur_flash"
	defaultTTL        = 5 * time.Minute
	keyInfo           = "fyyur flash cookie v1"

	// maxCookieSize stays under the 4096 bytes browsers keep per cookie,
	// leaving room for the name and attributes.
	maxCookieSize = 3800
)

// ErrTooLarge is returned by Set when the signed flash would not fit in a cookie.
var ErrTooLarge = errors.New("flash: cookie too large")

// Message is a single notice.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"message"`
}

// Flash is what one request leaves for the next.
type Flash struct {
	Messages []Message `json:"messages,omitempty"`
	Form     url.Values `json:"form,omitempty"`
}

// Empty reports whether f carries nothing.
func (f Flash) Empty() bool {
	return len(f.Messages) == 0 && len(f.Form) == 0
}

type claims struct {
	Flash
	jwt.RegisteredClaims
}

// Store reads and writes flash cookies.
type Store struct {
	key    []byte
	name   string
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithSecureCookie marks the cookie Secure, for deployments behind TLS.
func WithSecureCookie(secure bool) Option {
	return func(s *Store) { s.secure = secure }
}

// WithTTL bounds how long an unread flash stays valid.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides the time source used for expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New derives the signing key from secret.
func New(secret string, opts ...Option) (*Store, error) {
	if secret == "" {
		return nil, errors.New("flash: secret is required")
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, fmt.Errorf("derive flash key: %w", err)
	}

	s := &Store{key: key, name: defaultCookieName, ttl: defaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Set replaces the pending flash with f. Nothing is written when the signed
// value exceeds the cookie limit; the error wraps ErrTooLarge.
func (s *Store) Set(w http.ResponseWriter, f Flash) error {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Flash: f,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.key)
	if err != nil {
		return fmt.Errorf("sign flash: %w", err)
	}
	if len(signed) > maxCookieSize {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, len(signed))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(s.ttl / time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the pending flash and clears it. A missing, tampered or expired
// cookie yields an empty Flash.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) Flash {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return Flash{}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	f, err := s.decode(cookie.Value)
	if err != nil {
		return Flash{}
	}
	return f
}

func (s *Store) decode(raw string) (Flash, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Flash{}, fmt.Errorf("parse flash: %w", err)
	}
	return c.Flash, nil
}
