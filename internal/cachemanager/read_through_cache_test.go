package cachemanager

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockCacheManager is a testify mock of CacheManager.
type mockCacheManager[K ~string, V any] struct {
	mock.Mock
}

func (m *mockCacheManager[K, V]) Get(ctx context.Context, key K) (V, bool) {
	args := m.Called(ctx, key)
	return args.Get(0).(V), args.Bool(1)
}

func (m *mockCacheManager[K, V]) Set(ctx context.Context, key K, value V, ttl time.Duration) {
	m.Called(ctx, key, value, ttl)
}

func (m *mockCacheManager[K, V]) Delete(ctx context.Context, keys ...K) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *mockCacheManager[K, V]) Flush(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCacheManager[K, V]) Len() int {
	return m.Called().Int(0)
}

func upper(calls *int) func(ctx context.Context, input string) (string, error) {
	return func(ctx context.Context, input string) (string, error) {
		*calls++
		return strings.ToUpper(input), nil
	}
}

func TestReadThroughCache_Get_WithCacheDisabled(t *testing.T) {
	managerMock := &mockCacheManager[string, string]{}
	calls := 0

	rtc := NewReadThroughCache[string, string, string](managerMock, upper(&calls), true)

	got, err := rtc.Get(context.Background(), "key", "hrlo", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "HRLO", got)
	require.Equal(t, 1, calls)
	managerMock.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	managerMock.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReadThroughCache_Get_HitSkipsFn(t *testing.T) {
	ctx := context.Background()
	managerMock := &mockCacheManager[string, string]{}
	managerMock.On("Get", ctx, "key").Return("CACHED", true).Once()
	calls := 0

	rtc := NewReadThroughCache[string, string, string](managerMock, upper(&calls), false)

	got, err := rtc.Get(ctx, "key", "hrlo", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "CACHED", got)
	require.Zero(t, calls)
	managerMock.AssertExpectations(t)
}

func TestReadThroughCache_Get_MissStoresResult(t *testing.T) {
	ctx := context.Background()
	managerMock := &mockCacheManager[string, string]{}
	managerMock.On("Get", ctx, "key").Return("", false).Once()
	managerMock.On("Set", ctx, "key", "HRLO", time.Minute).Once()
	calls := 0

	rtc := NewReadThroughCache[string, string, string](managerMock, upper(&calls), false)

	got, err := rtc.Get(ctx, "key", "hrlo", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "HRLO", got)
	require.Equal(t, 1, calls)
	managerMock.AssertExpectations(t)
}

func TestReadThroughCache_Get_ErrorNotCached(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	boom := errors.New("boom")

	rtc := NewReadThroughCache[string, string, string](cache, func(ctx context.Context, input string) (string, error) {
		return "", boom
	}, false)

	_, err := rtc.Get(ctx, "key", "hrlo", time.Minute)
	require.ErrorIs(t, err, boom)
	require.Zero(t, cache.Len())
}
