package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestNewClient_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "Unsupported scheme", url: "invalid://url"},
		{name: "Empty URL", url: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.url, "test", zap.NewNop())
			assert.Error(t, err)
			assert.Nil(t, client)
		})
	}
}

func TestClient_Health(t *testing.T) {
	_, client := setupTestRedis(t)
	assert.NoError(t, client.Health(context.Background()))
}

func TestClient_SAddReportsNewMembers(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	added, err := client.SAdd(ctx, "test:set", "member-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), added)

	// re-adding the same member reports zero, which is what the vote
	// store relies on for dedup
	added, err = client.SAdd(ctx, "test:set", "member-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), added)
}

func TestClient_HashCounters(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	n, err := client.HIncrBy(ctx, "test:hash", "0", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = client.HIncrBy(ctx, "test:hash", "0", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	fields, err := client.HGetAll(ctx, "test:hash")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"0": "2"}, fields)
}

func TestClient_ListWindow(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	for _, v := range []string{"a", "b", "c", "d"} {
		require.NoError(t, client.RPush(ctx, "test:list", v))
	}

	require.NoError(t, client.LTrim(ctx, "test:list", -2, -1))

	items, err := client.LRange(ctx, "test:list", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, items)

	length, err := client.LLen(ctx, "test:list")
	require.NoError(t, err)
	assert.Equal(t, int64(2), length)
}

func TestClient_Delete(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	_, err := client.Incr(ctx, "test:counter")
	require.NoError(t, err)

	require.NoError(t, client.Delete(ctx, "test:counter", "test:missing"))

	remaining, err := client.Exists(ctx, "test:counter")
	require.NoError(t, err)
	assert.Equal(t, int64(0), remaining)
}
