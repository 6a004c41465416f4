package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-rhythm/internal/infra/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App:       config.AppConfig{Timezone: "UTC"},
		HTTP:      config.HTTPConfig{Address: ":0"},
		Biorhythm: config.BiorhythmConfig{MaxRangeDays: 30, ForecastDays: 7},
		Maya:      config.MayaConfig{AnchorDate: "2012-12-21", AnchorKin: 260, MaxRangeDays: 30},
		Dress:     config.DressConfig{MaxRangeDays: 30},
		History:   config.HistoryConfig{Capacity: 3},
		Cache:     config.CacheConfig{TTL: time.Hour, Prefix: "maya", Capacity: 16},
	}
}

func TestNewEnginesMemoryCache(t *testing.T) {
	engines, err := NewEngines(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer engines.Close()

	ctx := context.Background()
	first, err := engines.Maya.Date(ctx, "2025-09-23")
	require.NoError(t, err)
	require.Equal(t, 239, first.Kin)
	second, err := engines.Maya.Date(ctx, "2025-09-23")
	require.NoError(t, err)
	require.Equal(t, first, second)

	usage := engines.CacheUsage.Snapshot()
	require.Equal(t, int64(1), usage.Hits)
	require.Equal(t, int64(1), usage.Misses)
}

func TestNewEnginesHonoursAnchor(t *testing.T) {
	cfg := testConfig()
	cfg.Maya.AnchorDate = "2025-09-23"
	cfg.Maya.AnchorKin = 183

	engines, err := NewEngines(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.Equal(t, 183, engines.Calendar.Kin(engines.Calendar.Anchor().Date))
}

func TestNewEnginesRejectsBadAnchor(t *testing.T) {
	cfg := testConfig()
	cfg.Maya.AnchorKin = 0
	_, err := NewEngines(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestNewReadingCacheFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Addr = "valkey://%zz"

	cal, err := NewCalendar(cfg)
	require.NoError(t, err)
	cache, closer := NewReadingCache(cfg, cal.Anchor(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NotNil(t, cache)
	require.Nil(t, closer)
}
