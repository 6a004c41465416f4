package advisory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
	apperrors "github.com/yanqian/cosmic-rhythm/pkg/errors"
)

// Default window used by callers that omit days_before/days_after.
const (
	DefaultDaysBefore = 1
	DefaultDaysAfter  = 6
)

const defaultMaxRangeDays = 366

// DayAdvice is the dress and diet guidance for one date. Personal is set
// when a birth date was supplied.
type DayAdvice struct {
	Date     caldate.Date `json:"date"`
	Weekday  string       `json:"weekday"`
	Kin      int          `json:"kin"`
	Seal     string       `json:"maya_seal"`
	Dress    Dress        `json:"dress"`
	Personal *Personal    `json:"personal,omitempty"`
}

// RangeRequest selects a window around today.
type RangeRequest struct {
	BirthDate  string
	DaysBefore int
	DaysAfter  int
}

// RangeAdvice lists day advice in chronological order.
type RangeAdvice struct {
	Days  []DayAdvice  `json:"dress_info_list"`
	Start caldate.Date `json:"start"`
	End   caldate.Date `json:"end"`
}

// Config carries service limits.
type Config struct {
	MaxRangeDays int
}

// Service exposes dress and diet advice.
type Service interface {
	Today(ctx context.Context, birthDate string) (DayAdvice, error)
	Date(ctx context.Context, date, birthDate string) (DayAdvice, error)
	Range(ctx context.Context, req RangeRequest) (RangeAdvice, error)
}

type service struct {
	cfg      Config
	calendar *maya.Calendar
	logger   *slog.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewService wires the advisory domain on top of the Maya calendar.
func NewService(cfg Config, calendar *maya.Calendar, loc *time.Location, logger *slog.Logger) Service {
	if cfg.MaxRangeDays <= 0 {
		cfg.MaxRangeDays = defaultMaxRangeDays
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{
		cfg:      cfg,
		calendar: calendar,
		logger:   logger.With("component", "advisory.service"),
		loc:      loc,
		now:      time.Now,
	}
}

func (s *service) Today(ctx context.Context, birthDate string) (DayAdvice, error) {
	return s.Date(ctx, "", birthDate)
}

func (s *service) Date(_ context.Context, input, birthDate string) (DayAdvice, error) {
	birth, err := parseOptionalBirth(birthDate)
	if err != nil {
		return DayAdvice{}, err
	}
	date := s.today()
	if strings.TrimSpace(input) != "" {
		date, err = caldate.Parse(input)
		if err != nil {
			return DayAdvice{}, apperrors.Wrap(apperrors.CodeInvalidDate, "date must be formatted as YYYY-MM-DD", err)
		}
	}
	return s.forDate(date, birth), nil
}

func (s *service) Range(_ context.Context, req RangeRequest) (RangeAdvice, error) {
	birth, err := parseOptionalBirth(req.BirthDate)
	if err != nil {
		return RangeAdvice{}, err
	}
	if req.DaysBefore < 0 || req.DaysAfter < 0 {
		return RangeAdvice{}, apperrors.Wrap(apperrors.CodeInvalidInput, "days_before and days_after must not be negative", nil)
	}
	if req.DaysBefore > s.cfg.MaxRangeDays || req.DaysAfter > s.cfg.MaxRangeDays {
		return RangeAdvice{}, apperrors.Wrap(apperrors.CodeInvalidInput,
			fmt.Sprintf("days_before and days_after must be at most %d", s.cfg.MaxRangeDays), nil)
	}
	today := s.today()
	out := RangeAdvice{
		Start: today.AddDays(-req.DaysBefore),
		End:   today.AddDays(req.DaysAfter),
	}
	for day := out.Start; !day.After(out.End); day = day.AddDays(1) {
		out.Days = append(out.Days, s.forDate(day, birth))
	}
	s.logger.Debug("dress range computed", "start", out.Start.String(), "end", out.End.String())
	return out, nil
}

// ForDate is the pure derivation behind the service: the seal colour family
// of date picks the outfit, and a non-zero birth adds personal advice.
func ForDate(calendar *maya.Calendar, date, birth caldate.Date) DayAdvice {
	kin := calendar.Kin(date)
	seal := maya.SealFor(kin)
	out := DayAdvice{
		Date:    date,
		Weekday: date.Weekday().String(),
		Kin:     kin,
		Seal:    seal.Name,
		Dress:   ForFamily(seal.Color),
	}
	if !birth.IsZero() {
		p := ForReading(biorhythm.Compute(birth, date))
		out.Personal = &p
	}
	return out
}

func (s *service) forDate(date, birth caldate.Date) DayAdvice {
	return ForDate(s.calendar, date, birth)
}

func parseOptionalBirth(input string) (caldate.Date, error) {
	if strings.TrimSpace(input) == "" {
		return caldate.Date{}, nil
	}
	birth, err := caldate.Parse(input)
	if err != nil {
		return caldate.Date{}, apperrors.Wrap(apperrors.CodeInvalidDate, "birth_date must be formatted as YYYY-MM-DD", err)
	}
	return birth, nil
}

func (s *service) today() caldate.Date {
	return caldate.FromTime(s.now().In(s.loc))
}
