package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vijaybattula26/gemini-ats/mocks"
)

type memStore struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
}

func newMemStore() *memStore { return &memStore{data: map[string]string{}} }

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func TestKey(t *testing.T) {
	a := Key("gemini-1.5-flash", "sys", "user")
	assert.Equal(t, a, Key("gemini-1.5-flash", "sys", "user"))
	assert.NotEqual(t, a, Key("other-model", "sys", "user"))
	// the separator keeps prompt boundaries distinct
	assert.NotEqual(t, Key("m", "ab", "c"), Key("m", "a", "bc"))
}

func TestAskCachesReplies(t *testing.T) {
	next := new(mocks.MockChatModel)
	next.On("Ask", mock.Anything, "sys", "user").Return("reply", nil).Once()
	c := Wrap(next, newMemStore(), "m", time.Minute, nil)

	for i := 0; i < 3; i++ {
		got, err := c.Ask(t.Context(), "sys", "user")
		require.NoError(t, err)
		assert.Equal(t, "reply", got)
	}
	next.AssertNumberOfCalls(t, "Ask", 1)
}

func TestAskDoesNotCacheErrors(t *testing.T) {
	next := new(mocks.MockChatModel)
	next.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("boom")).Twice()
	c := Wrap(next, newMemStore(), "m", time.Minute, nil)

	_, err := c.Ask(t.Context(), "s", "u")
	require.Error(t, err)
	_, err = c.Ask(t.Context(), "s", "u")
	require.Error(t, err)
	next.AssertExpectations(t)
}

func TestAskSurvivesStoreFailures(t *testing.T) {
	next := new(mocks.MockChatModel)
	next.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return("fresh", nil)
	store := newMemStore()
	store.getErr = errors.New("redis down")
	store.setErr = errors.New("redis down")

	got, err := Wrap(next, store, "m", time.Minute, nil).Ask(t.Context(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
}
