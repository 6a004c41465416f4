package biorhythm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
	apperrors "github.com/yanqian/cosmic-rhythm/pkg/errors"
)

const (
	defaultMaxRangeDays = 366
	defaultForecastDays = 7
)

// Service exposes biorhythm queries keyed by a birth date.
type Service interface {
	Today(ctx context.Context, birthDate string) (Reading, error)
	Date(ctx context.Context, birthDate, targetDate string) (Reading, error)
	Range(ctx context.Context, req RangeRequest) (RangeReading, error)
	Forecast(ctx context.Context, birthDate, startDate string) ([]ForecastDay, error)
	History(ctx context.Context) []string
}

// History stores recently queried birth dates.
type History interface {
	Record(value string) bool
	List() []string
}

type service struct {
	cfg     Config
	history History
	logger  *slog.Logger
	loc     *time.Location
	now     func() time.Time
}

// NewService wires the biorhythm domain. loc decides what "today" means.
func NewService(cfg Config, history History, loc *time.Location, logger *slog.Logger) Service {
	if cfg.MaxRangeDays <= 0 {
		cfg.MaxRangeDays = defaultMaxRangeDays
	}
	if cfg.ForecastDays <= 0 {
		cfg.ForecastDays = defaultForecastDays
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{
		cfg:     cfg,
		history: history,
		logger:  logger.With("component", "biorhythm.service"),
		loc:     loc,
		now:     time.Now,
	}
}

func (s *service) Today(ctx context.Context, birthDate string) (Reading, error) {
	return s.Date(ctx, birthDate, "")
}

func (s *service) Date(_ context.Context, birthDate, targetDate string) (Reading, error) {
	birth, err := s.parseBirth(birthDate)
	if err != nil {
		return Reading{}, err
	}
	target, err := s.resolveDate(targetDate)
	if err != nil {
		return Reading{}, apperrors.Wrap(apperrors.CodeInvalidDate, "date must be formatted as YYYY-MM-DD", err)
	}
	reading := Compute(birth, target)
	s.history.Record(birth.String())
	s.logger.Debug("biorhythm computed", "birth_date", birth.String(), "date", target.String(), "days_diff", reading.DaysDiff)
	return reading, nil
}

func (s *service) Range(_ context.Context, req RangeRequest) (RangeReading, error) {
	birth, err := s.parseBirth(req.BirthDate)
	if err != nil {
		return RangeReading{}, err
	}
	if err := s.checkWindow(req.DaysBefore, req.DaysAfter); err != nil {
		return RangeReading{}, err
	}
	out := Range(birth, s.today(), req.DaysBefore, req.DaysAfter)
	s.history.Record(birth.String())
	s.logger.Info("biorhythm range computed",
		"birth_date", birth.String(),
		"start", out.Start.String(),
		"end", out.End.String(),
		"days", len(out.Readings),
	)
	return out, nil
}

func (s *service) Forecast(_ context.Context, birthDate, startDate string) ([]ForecastDay, error) {
	birth, err := s.parseBirth(birthDate)
	if err != nil {
		return nil, err
	}
	start, err := s.resolveDate(startDate)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidDate, "start must be formatted as YYYY-MM-DD", err)
	}
	days := Forecast(birth, start, s.cfg.ForecastDays)
	s.history.Record(birth.String())
	return days, nil
}

func (s *service) History(context.Context) []string {
	return s.history.List()
}

func (s *service) parseBirth(input string) (caldate.Date, error) {
	if strings.TrimSpace(input) == "" {
		return caldate.Date{}, apperrors.Wrap(apperrors.CodeInvalidInput, "birth_date is required", nil)
	}
	birth, err := caldate.Parse(input)
	if err != nil {
		return caldate.Date{}, apperrors.Wrap(apperrors.CodeInvalidDate, "birth_date must be formatted as YYYY-MM-DD", err)
	}
	return birth, nil
}

func (s *service) checkWindow(before, after int) error {
	if before < 0 || after < 0 {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "days_before and days_after must not be negative", nil)
	}
	if before > s.cfg.MaxRangeDays || after > s.cfg.MaxRangeDays {
		return apperrors.Wrap(apperrors.CodeInvalidInput,
			fmt.Sprintf("days_before and days_after must be at most %d", s.cfg.MaxRangeDays), nil)
	}
	return nil
}

// resolveDate parses input, falling back to today when it is empty.
func (s *service) resolveDate(input string) (caldate.Date, error) {
	if strings.TrimSpace(input) == "" {
		return s.today(), nil
	}
	return caldate.Parse(input)
}

func (s *service) today() caldate.Date {
	return caldate.FromTime(s.now().In(s.loc))
}
