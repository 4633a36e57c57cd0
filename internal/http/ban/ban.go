package ban

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// BanLogEntry records one ban.
type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

const DailyBanLogKey = "ratelimit:banlog:daily"

// Store persists strikes, active bans and the ban log.
type Store interface {
	// AddStrike records a strike for target and returns the number of
	// strikes inside the current window.
	AddStrike(ctx context.Context, target string, window time.Duration) (int, error)
	Ban(ctx context.Context, target string, d time.Duration) error
	IsBanned(ctx context.Context, target string) (bool, error)
	AppendLog(ctx context.Context, entry BanLogEntry) error
	// DrainLog returns the logged entries and clears the log when clear is set.
	DrainLog(ctx context.Context, clear bool) ([]BanLogEntry, error)
}

// Guard bans clients that keep exceeding the rate limit.
type Guard struct {
	store    Store
	strikes  int
	window   time.Duration
	duration time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewGuard(store Store, strikes int, window, duration time.Duration, logger *zap.Logger) *Guard {
	return &Guard{
		store:    store,
		strikes:  strikes,
		window:   window,
		duration: duration,
		logger:   logger,
		now:      time.Now,
	}
}

// Strike records a rate limit violation by target on route and bans target
// once it reaches the configured number of strikes. It reports whether target
// is now banned.
func (g *Guard) Strike(ctx context.Context, target, route string) (bool, error) {
	count, err := g.store.AddStrike(ctx, target, g.window)
	if err != nil {
		return false, fmt.Errorf("add strike: %w", err)
	}
	if count < g.strikes {
		return false, nil
	}

	if err := g.store.Ban(ctx, target, g.duration); err != nil {
		return false, fmt.Errorf("ban %s: %w", target, err)
	}
	entry := BanLogEntry{Target: target, Route: route, Strikes: count, Time: g.now()}
	if err := g.store.AppendLog(ctx, entry); err != nil {
		g.logger.Error("failed to log ban", zap.String("target", target), zap.Error(err))
	}
	g.logger.Warn("client banned",
		zap.String("target", target),
		zap.String("route", route),
		zap.Int("strikes", count),
		zap.Duration("duration", g.duration),
	)
	return true, nil
}

func (g *Guard) IsBanned(ctx context.Context, target string) (bool, error) {
	return g.store.IsBanned(ctx, target)
}

// Summary aggregates ban log entries.
type Summary struct {
	Total    int            `json:"total"`
	ByRoute  map[string]int `json:"by_route"`
	ByTarget map[string]int `json:"by_target"`
	Entries  []BanLogEntry  `json:"entries"`
}

func summarize(entries []BanLogEntry) Summary {
	s := Summary{
		Total:    len(entries),
		ByRoute:  map[string]int{},
		ByTarget: map[string]int{},
		Entries:  entries,
	}
	if s.Entries == nil {
		s.Entries = []BanLogEntry{}
	}
	for _, e := range entries {
		s.ByRoute[e.Route]++
		s.ByTarget[e.Target]++
	}
	return s
}

// Summary returns the aggregated ban log without clearing it.
func (g *Guard) Summary(ctx context.Context) (Summary, error) {
	entries, err := g.store.DrainLog(ctx, false)
	if err != nil {
		return Summary{}, err
	}
	return summarize(entries), nil
}

// StartDailyBanSummary logs and clears the ban log every day at 23:59 local
// time until ctx is done.
func (g *Guard) StartDailyBanSummary(ctx context.Context) {
	for {
		timer := time.NewTimer(nextDailySummary(g.now()).Sub(g.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			g.logDailySummary(ctx)
		}
	}
}

// nextDailySummary returns the first 23:59 in now's location after now.
func nextDailySummary(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (g *Guard) logDailySummary(ctx context.Context) {
	entries, err := g.store.DrainLog(ctx, true)
	if err != nil {
		g.logger.Error("failed to read ban log", zap.Error(err))
		return
	}
	if len(entries) == 0 {
		return
	}
	s := summarize(entries)
	g.logger.Info("daily ban summary",
		zap.Int("total", s.Total),
		zap.Any("by_route", s.ByRoute),
		zap.Any("by_target", s.ByTarget),
	)
}
