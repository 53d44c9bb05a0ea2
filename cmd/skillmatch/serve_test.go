package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonathan/skill-match/internal/assessment"
	"github.com/jonathan/skill-match/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenStore_Memory(t *testing.T) {
	cfg := config.Default()

	store, closeStore, err := openStore(context.Background(), &cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeStore()

	assert.IsType(t, &assessment.MemoryStore{}, store)
}

func TestOpenStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.RedisAddr = mr.Addr()
	cfg.SessionTTL = time.Minute

	store, closeStore, err := openStore(context.Background(), &cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeStore()

	require.IsType(t, &assessment.RedisStore{}, store)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "c1", &assessment.Snapshot{}))
	assert.True(t, mr.Exists("skillmatch:assessment:c1"))
	assert.Equal(t, time.Minute, mr.TTL("skillmatch:assessment:c1"))
}

func TestOpenStore_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := config.Default()
	cfg.RedisAddr = addr

	_, _, err := openStore(context.Background(), &cfg, zap.NewNop())
	require.Error(t, err)

	var storeErr *assessment.StoreError
	assert.ErrorAs(t, err, &storeErr)
}
