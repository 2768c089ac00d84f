package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liquidacenter-live/internal/domain"
)

func chatMessage(i int) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        fmt.Sprintf("msg-%d", i),
		UserName:  "viewer",
		Role:      domain.RoleUser,
		Text:      fmt.Sprintf("message %d", i),
		CreatedAt: time.Now().UTC(),
	}
}

func TestMemoryChatStore_AppendAndList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryChatStore()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(ctx, chatMessage(i)))
	}

	messages, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 5)

	// oldest first
	assert.Equal(t, "msg-0", messages[0].ID)
	assert.Equal(t, "msg-4", messages[4].ID)
}

func TestMemoryChatStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryChatStore()
	require.NoError(t, store.Append(ctx, chatMessage(0)))

	messages, err := store.List(ctx)
	require.NoError(t, err)
	messages[0].Text = "mutated"

	fresh, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "message 0", fresh[0].Text)
}

func TestMemoryChatStore_Trim(t *testing.T) {
	ctx := context.Background()

	t.Run("below threshold is untouched", func(t *testing.T) {
		store := NewMemoryChatStore()
		for i := 0; i < 100; i++ {
			require.NoError(t, store.Append(ctx, chatMessage(i)))
		}

		require.NoError(t, store.Trim(ctx, 100, 50))

		messages, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, messages, 100)
	})

	t.Run("over threshold keeps newest", func(t *testing.T) {
		store := NewMemoryChatStore()
		for i := 0; i < 101; i++ {
			require.NoError(t, store.Append(ctx, chatMessage(i)))
		}

		require.NoError(t, store.Trim(ctx, 100, 50))

		messages, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, messages, 50)
		assert.Equal(t, "msg-51", messages[0].ID)
		assert.Equal(t, "msg-100", messages[49].ID)
	})
}

func TestMemoryChatStore_HardLimit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryChatStore()

	// the append path enforces a cap even without a trim sweep
	for i := 0; i < hardChatLimit+10; i++ {
		require.NoError(t, store.Append(ctx, chatMessage(i)))
	}

	messages, err := store.List(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(messages), hardChatLimit)
	assert.Equal(t, fmt.Sprintf("msg-%d", hardChatLimit+9), messages[len(messages)-1].ID)
}
