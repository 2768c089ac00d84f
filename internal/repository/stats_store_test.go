package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liquidacenter-live/internal/domain"
)

func TestMemoryStatsStore_Apply(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		actions     []domain.StatsAction
		wantViewers int64
		wantLikes   int64
	}{
		{
			name:        "joins accumulate",
			actions:     []domain.StatsAction{domain.ActionJoin, domain.ActionJoin, domain.ActionJoin},
			wantViewers: 3,
		},
		{
			name:        "leave decrements",
			actions:     []domain.StatsAction{domain.ActionJoin, domain.ActionJoin, domain.ActionLeave},
			wantViewers: 1,
		},
		{
			name:        "leave clamps at zero",
			actions:     []domain.StatsAction{domain.ActionLeave, domain.ActionLeave},
			wantViewers: 0,
		},
		{
			name:      "likes are unbounded and independent",
			actions:   []domain.StatsAction{domain.ActionLike, domain.ActionLike, domain.ActionLike, domain.ActionLike},
			wantLikes: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStatsStore()
			var stats domain.LiveStats
			var err error
			for _, action := range tt.actions {
				stats, err = store.Apply(ctx, action)
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantViewers, stats.Viewers)
			assert.Equal(t, tt.wantLikes, stats.Likes)
		})
	}
}

func TestMemoryStatsStore_InvalidAction(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStatsStore()

	_, err := store.Apply(ctx, domain.StatsAction("boost"))
	assert.ErrorIs(t, err, domain.ErrInvalidAction)

	stats, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LiveStats{}, stats)
}

func TestMemoryStatsStore_Reset(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStatsStore()

	_, err := store.Apply(ctx, domain.ActionJoin)
	require.NoError(t, err)
	_, err = store.Apply(ctx, domain.ActionLike)
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx))

	stats, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LiveStats{}, stats)
}
