package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Session is a server side session identified by a cookie.
// Values are stored as raw JSON so each consumer decodes its own shape.
type Session struct {
	ID        uuid.UUID
	Values    map[string]json.RawMessage
	Version   int64 // Incremented on every successful save; used for compare-and-swap.
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	isNew    bool
	modified bool
}

// NewSession starts a session that expires after ttl.
func NewSession(now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        uuid.New(),
		Values:    make(map[string]json.RawMessage),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
		isNew:     true,
		modified:  true,
	}
}

// Has reports whether a value is stored under key.
func (s *Session) Has(key string) bool {
	_, ok := s.Values[key]

	return ok
}

// Get decodes the value stored under key into dst. It reports false when the key is absent.
func (s *Session) Get(key string, dst any) (bool, error) {
	raw, ok := s.Values[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return true, errors.Wrapf(err, "decode session value %q", key)
	}

	return true, nil
}

// Set encodes value and stores it under key.
func (s *Session) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode session value %q", key)
	}

	if s.Values == nil {
		s.Values = make(map[string]json.RawMessage)
	}
	s.Values[key] = raw
	s.modified = true

	return nil
}

// Delete removes key from the session.
func (s *Session) Delete(key string) {
	if _, ok := s.Values[key]; !ok {
		return
	}

	delete(s.Values, key)
	s.modified = true
}

// MarkModified flags the session for saving.
func (s *Session) MarkModified() { s.modified = true }

// IsModified reports whether the session must be saved.
func (s *Session) IsModified() bool { return s.modified }

// IsNew reports whether the session has never been persisted.
func (s *Session) IsNew() bool { return s.isNew }

// MarkSaved clears the dirty flags after a successful save.
func (s *Session) MarkSaved() {
	s.isNew = false
	s.modified = false
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
