package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SetGetDelete(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	session := NewSession(now, time.Hour)
	require.True(t, session.IsNew())
	session.MarkSaved()
	require.False(t, session.IsModified())

	require.NoError(t, session.Set("greeting", map[string]int{"a": 1}))
	assert.True(t, session.IsModified())

	var got map[string]int
	ok, err := session.Get("greeting", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, got["a"])

	ok, err = session.Get("absent", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	session.MarkSaved()
	session.Delete("absent")
	assert.False(t, session.IsModified())
	session.Delete("greeting")
	assert.True(t, session.IsModified())
	assert.False(t, session.Has("greeting"))
}

func TestSession_GetUndecodable(t *testing.T) {
	t.Parallel()

	session := NewSession(time.Now(), time.Hour)
	session.Values["cart"] = json.RawMessage(`"not a map"`)

	var entries map[string]*CartEntry
	ok, err := session.Get("cart", &entries)

	assert.True(t, ok)
	assert.Error(t, err)
}

func TestSession_Expired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	session := NewSession(now, time.Minute)

	assert.False(t, session.Expired(now))
	assert.True(t, session.Expired(now.Add(time.Minute)))
}
