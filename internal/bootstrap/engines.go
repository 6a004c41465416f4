package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/cosmic-rhythm/internal/domain/advisory"
	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
	"github.com/yanqian/cosmic-rhythm/internal/domain/history"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
	"github.com/yanqian/cosmic-rhythm/internal/infra/config"
	"github.com/yanqian/cosmic-rhythm/internal/infra/readingcache"
	"github.com/yanqian/cosmic-rhythm/pkg/metrics"
	"github.com/yanqian/cosmic-rhythm/pkg/util"
)

// Engines bundles the domain services shared by every entry point.
type Engines struct {
	Biorhythm  biorhythm.Service
	Maya       maya.Service
	Dress      advisory.Service
	Calendar   *maya.Calendar
	CacheUsage *metrics.CacheUsage

	closers []func()
}

// NewEngines builds all services from configuration.
func NewEngines(cfg *config.Config, logger *slog.Logger) (*Engines, error) {
	loc, err := NewLocation(cfg)
	if err != nil {
		return nil, err
	}
	cal, err := NewCalendar(cfg)
	if err != nil {
		return nil, err
	}

	e := &Engines{Calendar: cal, CacheUsage: &metrics.CacheUsage{}}
	cache, closer := NewReadingCache(cfg, cal.Anchor(), logger)
	if closer != nil {
		e.closers = append(e.closers, closer)
	}

	e.Biorhythm = biorhythm.NewService(
		biorhythm.Config{
			MaxRangeDays: cfg.Biorhythm.MaxRangeDays,
			ForecastDays: cfg.Biorhythm.ForecastDays,
		},
		history.NewTracker(cfg.History.Capacity),
		loc,
		logger,
	)
	e.Maya = maya.NewService(
		maya.Config{
			MaxRangeDays: cfg.Maya.MaxRangeDays,
			CacheTTL:     cfg.Cache.TTL,
		},
		cal,
		readingcache.NewInstrumented(cache, e.CacheUsage),
		history.NewTracker(cfg.History.Capacity),
		loc,
		logger,
	)
	e.Dress = advisory.NewService(advisory.Config{MaxRangeDays: cfg.Dress.MaxRangeDays}, cal, loc, logger)
	return e, nil
}

// Close releases external clients.
func (e *Engines) Close() {
	for _, c := range e.closers {
		c()
	}
	e.closers = nil
}

// NewLocation resolves the zone that decides "today".
func NewLocation(cfg *config.Config) (*time.Location, error) {
	return util.LoadLocation(cfg.App.Timezone)
}

// NewCalendar builds the Tzolk'in calendar from the configured anchor.
func NewCalendar(cfg *config.Config) (*maya.Calendar, error) {
	date, err := caldate.Parse(cfg.Maya.AnchorDate)
	if err != nil {
		return nil, err
	}
	return maya.NewCalendar(maya.Anchor{Date: date, Kin: cfg.Maya.AnchorKin})
}

// NewReadingCache connects to Valkey when enabled and falls back to the in
// process store on any failure. The returned closer is nil for the memory
// store.
func NewReadingCache(cfg *config.Config, anchor maya.Anchor, logger *slog.Logger) (maya.ReadingCache, func()) {
	if !cfg.Cache.Enabled {
		return readingcache.NewMemoryStore(cfg.Cache.Capacity), nil
	}
	opt, err := buildValkeyOptions(cfg.Cache.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
		return readingcache.NewMemoryStore(cfg.Cache.Capacity), nil
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
		return readingcache.NewMemoryStore(cfg.Cache.Capacity), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		client.Close()
		return readingcache.NewMemoryStore(cfg.Cache.Capacity), nil
	}
	logger.Info("maya valkey cache enabled", "addr", cfg.Cache.Addr)
	return readingcache.NewValkeyStore(client, cfg.Cache.Prefix, anchor), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
