// Package theme stores the dark/light display preference under a single key.
package theme

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Theme is the display preference.
type Theme string

// Supported themes. Dark is the default.
const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Key is the storage key (and cookie name) holding the preference.
const Key = "theme"

// CookieMaxAge keeps the browser preference for a year.
const CookieMaxAge = 365 * 24 * time.Hour

// Parse maps a stored value to a Theme. Anything but "light" is Dark.
func Parse(s string) Theme {
	if Theme(s) == Light {
		return Light
	}
	return Dark
}

// Valid reports whether s is exactly one of the supported themes.
func Valid(s string) bool {
	return Theme(s) == Dark || Theme(s) == Light
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t != Light
}

func (t Theme) String() string {
	return string(t)
}

// KV is a persistent key/value storage.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store reads and writes the preference through a KV.
type Store struct {
	kv KV
}

// NewStore creates a Store backed by kv. A nil kv behaves as unavailable
// storage: loads return Dark and saves are ignored.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load returns the stored theme. Missing, unrecognised, or unreadable
// values yield Dark.
func (s *Store) Load(ctx context.Context) Theme {
	if s.kv == nil {
		return Dark
	}
	value, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		log.Printf("[theme] reading preference: %v", err)
		return Dark
	}
	if !ok {
		return Dark
	}
	return Parse(value)
}

// Save writes t. Storage failures are logged and otherwise ignored.
func (s *Store) Save(ctx context.Context, t Theme) {
	if s.kv == nil {
		return
	}
	if err := s.kv.Set(ctx, Key, Parse(string(t)).String()); err != nil {
		log.Printf("[theme] saving preference: %v", err)
	}
}

// Toggle flips the stored theme, saves it, and returns the new value.
func (s *Store) Toggle(ctx context.Context) Theme {
	next := s.Load(ctx).Toggle()
	s.Save(ctx, next)
	return next
}

// FromRequest reads the preference from the request cookie.
func FromRequest(r *http.Request) Theme {
	c, err := r.Cookie(Key)
	if err != nil {
		return Dark
	}
	return Parse(c.Value)
}

// SetCookie persists t in the visitor's browser.
func SetCookie(w http.ResponseWriter, t Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     Key,
		Value:    Parse(string(t)).String(),
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}
