package maya

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
	apperrors "github.com/yanqian/cosmic-rhythm/pkg/errors"
)

// Default window used by callers that omit days_before/days_after.
const (
	DefaultDaysBefore = 3
	DefaultDaysAfter  = 3
)

const defaultMaxRangeDays = 366

// Config carries service limits and cache policy.
type Config struct {
	MaxRangeDays int
	CacheTTL     time.Duration
}

// RangeRequest selects a window around today.
type RangeRequest struct {
	DaysBefore int
	DaysAfter  int
}

// DateRange is the inclusive bounds of a RangeReading.
type DateRange struct {
	Start caldate.Date `json:"start"`
	End   caldate.Date `json:"end"`
}

// RangeReading lists day readings in chronological order.
type RangeReading struct {
	Readings  []DayReading `json:"maya_info_list"`
	DateRange DateRange    `json:"date_range"`
}

// Service exposes Maya calendar queries.
type Service interface {
	Today(ctx context.Context) (DayReading, error)
	Date(ctx context.Context, date string) (DayReading, error)
	Range(ctx context.Context, req RangeRequest) (RangeReading, error)
	BirthInfo(ctx context.Context, birthDate string) (BirthInfo, error)
	History(ctx context.Context) []string
}

// ReadingCache stores computed day readings. Readings are pure functions of
// the date and anchor, so entries never go stale before their TTL.
type ReadingCache interface {
	Get(ctx context.Context, date caldate.Date) (DayReading, bool, error)
	Put(ctx context.Context, reading DayReading, ttl time.Duration) error
}

// History stores recently queried birth dates.
type History interface {
	Record(value string) bool
	List() []string
}

type service struct {
	cfg      Config
	calendar *Calendar
	cache    ReadingCache
	history  History
	logger   *slog.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewService wires the Maya domain. cache may be nil.
func NewService(cfg Config, calendar *Calendar, cache ReadingCache, history History, loc *time.Location, logger *slog.Logger) Service {
	if cfg.MaxRangeDays <= 0 {
		cfg.MaxRangeDays = defaultMaxRangeDays
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{
		cfg:      cfg,
		calendar: calendar,
		cache:    cache,
		history:  history,
		logger:   logger.With("component", "maya.service"),
		loc:      loc,
		now:      time.Now,
	}
}

func (s *service) Today(ctx context.Context) (DayReading, error) {
	return s.reading(ctx, s.today()), nil
}

func (s *service) Date(ctx context.Context, input string) (DayReading, error) {
	if strings.TrimSpace(input) == "" {
		return s.Today(ctx)
	}
	date, err := caldate.Parse(input)
	if err != nil {
		return DayReading{}, apperrors.Wrap(apperrors.CodeInvalidDate, "date must be formatted as YYYY-MM-DD", err)
	}
	return s.reading(ctx, date), nil
}

func (s *service) Range(ctx context.Context, req RangeRequest) (RangeReading, error) {
	if req.DaysBefore < 0 || req.DaysAfter < 0 {
		return RangeReading{}, apperrors.Wrap(apperrors.CodeInvalidInput, "days_before and days_after must not be negative", nil)
	}
	if req.DaysBefore > s.cfg.MaxRangeDays || req.DaysAfter > s.cfg.MaxRangeDays {
		return RangeReading{}, apperrors.Wrap(apperrors.CodeInvalidInput,
			fmt.Sprintf("days_before and days_after must be at most %d", s.cfg.MaxRangeDays), nil)
	}
	today := s.today()
	out := RangeReading{
		Readings: make([]DayReading, 0, req.DaysBefore+req.DaysAfter+1),
		DateRange: DateRange{
			Start: today.AddDays(-req.DaysBefore),
			End:   today.AddDays(req.DaysAfter),
		},
	}
	for day := out.DateRange.Start; !day.After(out.DateRange.End); day = day.AddDays(1) {
		out.Readings = append(out.Readings, s.reading(ctx, day))
	}
	return out, nil
}

func (s *service) BirthInfo(_ context.Context, birthDate string) (BirthInfo, error) {
	if strings.TrimSpace(birthDate) == "" {
		return BirthInfo{}, apperrors.Wrap(apperrors.CodeInvalidInput, "birth_date is required", nil)
	}
	birth, err := caldate.Parse(birthDate)
	if err != nil {
		return BirthInfo{}, apperrors.Wrap(apperrors.CodeInvalidDate, "birth_date must be formatted as YYYY-MM-DD", err)
	}
	s.history.Record(birth.String())
	info := s.calendar.Birth(birth)
	s.logger.Info("maya birth chart computed", "birth_date", birth.String(), "kin", info.Kin)
	return info, nil
}

func (s *service) History(context.Context) []string {
	return s.history.List()
}

// reading consults the cache first. Cache failures are logged and the
// reading is computed directly.
func (s *service) reading(ctx context.Context, date caldate.Date) DayReading {
	if s.cache == nil {
		return s.calendar.Reading(date)
	}
	if cached, ok, err := s.cache.Get(ctx, date); err != nil {
		s.logger.Warn("maya reading cache get failed", "date", date.String(), "error", err)
	} else if ok {
		return cached
	}

	reading := s.calendar.Reading(date)
	if err := s.cache.Put(ctx, reading, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("maya reading cache put failed", "date", date.String(), "error", err)
	}
	return reading
}

func (s *service) today() caldate.Date {
	return caldate.FromTime(s.now().In(s.loc))
}
