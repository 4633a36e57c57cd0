package ban

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/storefront/internal/redissvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newMemoryGuard(strikes int) (*Guard, *InMemoryStore, *clock) {
	clk := &clock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	store := NewInMemoryStore()
	store.now = clk.Now
	g := NewGuard(store, strikes, time.Minute, 10*time.Minute, zap.NewNop())
	g.now = clk.Now
	return g, store, clk
}

func TestGuard_BansAfterStrikes(t *testing.T) {
	ctx := context.Background()
	g, _, _ := newMemoryGuard(3)

	for i := 0; i < 2; i++ {
		banned, err := g.Strike(ctx, "10.0.0.1", "/cart")
		require.NoError(t, err)
		assert.False(t, banned)
	}
	banned, err := g.Strike(ctx, "10.0.0.1", "/cart")
	require.NoError(t, err)
	assert.True(t, banned)

	banned, err = g.IsBanned(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, banned)

	banned, err = g.IsBanned(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestGuard_StrikeWindowExpires(t *testing.T) {
	ctx := context.Background()
	g, _, clk := newMemoryGuard(3)

	_, _ = g.Strike(ctx, "ip", "/products")
	_, _ = g.Strike(ctx, "ip", "/products")
	clk.Advance(2 * time.Minute)

	banned, err := g.Strike(ctx, "ip", "/products")
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestGuard_BanExpires(t *testing.T) {
	ctx := context.Background()
	g, _, clk := newMemoryGuard(1)

	banned, _ := g.Strike(ctx, "ip", "/cart")
	require.True(t, banned)

	clk.Advance(11 * time.Minute)
	banned, err := g.IsBanned(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestGuard_SummaryAndDailyDrain(t *testing.T) {
	ctx := context.Background()
	g, store, _ := newMemoryGuard(1)

	_, _ = g.Strike(ctx, "a", "/cart")
	_, _ = g.Strike(ctx, "b", "/cart")
	_, _ = g.Strike(ctx, "a", "/products")

	s, err := g.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, map[string]int{"/cart": 2, "/products": 1}, s.ByRoute)
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, s.ByTarget)

	g.logDailySummary(ctx)
	entries, _ := store.DrainLog(ctx, false)
	assert.Empty(t, entries)

	s, err = g.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Total)
	assert.NotNil(t, s.Entries)
}

func TestNextDailySummary(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"morning", time.Date(2024, 5, 1, 9, 30, 0, 0, loc), time.Date(2024, 5, 1, 23, 59, 0, 0, loc)},
		{"just before", time.Date(2024, 5, 1, 23, 58, 59, 0, loc), time.Date(2024, 5, 1, 23, 59, 0, 0, loc)},
		{"at summary time", time.Date(2024, 5, 1, 23, 59, 0, 0, loc), time.Date(2024, 5, 2, 23, 59, 0, 0, loc)},
		{"after midnight summary", time.Date(2024, 5, 31, 23, 59, 30, 0, loc), time.Date(2024, 6, 1, 23, 59, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(nextDailySummary(tt.now)), "got %v", nextDailySummary(tt.now))
		})
	}
}

func TestStartDailyBanSummary_StopsOnCancel(t *testing.T) {
	g, _, _ := newMemoryGuard(1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		g.StartDailyBanSummary(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("summary loop did not stop")
	}
}

// Runs only when a Redis server is available, like the integrated suites.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("STOREFRONT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STOREFRONT_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, rdb.Ping(ctx).Err())
	t.Cleanup(func() {
		rdb.Del(ctx, DailyBanLogKey)
		rdb.Close()
	})

	store := NewRedisStore(redissvc.NewRedisService(rdb))
	g := NewGuard(store, 2, time.Minute, time.Minute, zap.NewNop())
	target := "test-" + uuid.NewString()

	banned, err := g.Strike(ctx, target, "/cart")
	require.NoError(t, err)
	assert.False(t, banned)

	banned, err = g.Strike(ctx, target, "/cart")
	require.NoError(t, err)
	assert.True(t, banned)

	banned, err = store.IsBanned(ctx, target)
	require.NoError(t, err)
	assert.True(t, banned)

	entries, err := store.DrainLog(ctx, true)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, target, entries[len(entries)-1].Target)
}
