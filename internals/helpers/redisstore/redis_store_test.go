package redisstore

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Storage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := New(client, "limiter:")
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestStorage_GetSetDelete(t *testing.T) {
	s, mr := setupStore(t)

	v, err := s.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Set("ip", []byte("3"), time.Minute))
	assert.True(t, mr.Exists("limiter:ip"))

	v, err = s.Get("ip")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), v)

	require.NoError(t, s.Delete("ip"))
	v, err = s.Get("ip")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestStorage_Expiry(t *testing.T) {
	s, mr := setupStore(t)

	require.NoError(t, s.Set("ip", []byte("1"), time.Second))
	mr.FastForward(2 * time.Second)

	v, err := s.Get("ip")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestStorage_ResetKeepsForeignKeys(t *testing.T) {
	s, mr := setupStore(t)

	require.NoError(t, mr.Set("other:key", "x"))
	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Set("b", []byte("2"), 0))

	require.NoError(t, s.Reset())
	assert.False(t, mr.Exists("limiter:a"))
	assert.False(t, mr.Exists("limiter:b"))
	assert.True(t, mr.Exists("other:key"))
}

func TestNewFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := NewFromURL("redis://"+mr.Addr()+"/0", "p:")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = NewFromURL("not-a-url", "p:")
	assert.Error(t, err)
}
