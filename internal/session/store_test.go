// internal/session/store_test.go
package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateGetDestroy(t *testing.T) {
	store := NewStore(time.Hour)

	token, err := store.Create(7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, ok := store.Get(token)
	require.True(t, ok)
	assert.EqualValues(t, 7, userID)

	store.Destroy(token)
	_, ok = store.Get(token)
	assert.False(t, ok)
}

func TestStoreTokensAreUnique(t *testing.T) {
	store := NewStore(time.Hour)

	a, err := store.Create(1)
	require.NoError(t, err)
	b, err := store.Create(1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(10 * time.Millisecond)

	token, err := store.Create(7)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, ok := store.Get(token)
	assert.False(t, ok, "expired tokens resolve as absent before the sweep runs")
}

func TestStoreDestroyUser(t *testing.T) {
	store := NewStore(time.Hour)

	a, err := store.Create(7)
	require.NoError(t, err)
	b, err := store.Create(7)
	require.NoError(t, err)
	other, err := store.Create(8)
	require.NoError(t, err)

	store.DestroyUser(7)

	_, ok := store.Get(a)
	assert.False(t, ok)
	_, ok = store.Get(b)
	assert.False(t, ok)
	_, ok = store.Get(other)
	assert.True(t, ok, "other accounts keep their sessions")
}
