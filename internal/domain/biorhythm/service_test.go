package biorhythm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
	"github.com/yanqian/cosmic-rhythm/internal/domain/history"
	apperrors "github.com/yanqian/cosmic-rhythm/pkg/errors"
)

func newTestService(t *testing.T) (*service, *history.Tracker) {
	t.Helper()
	tracker := history.NewTracker(history.DefaultCapacity)
	svc := NewService(Config{}, tracker, time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)
	svc.now = func() time.Time {
		return time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC)
	}
	return svc, tracker
}

func TestServiceTodayUsesClock(t *testing.T) {
	svc, tracker := newTestService(t)

	r, err := svc.Today(context.Background(), "1990-1-1")
	require.NoError(t, err)
	require.Equal(t, caldate.MustParse("2024-01-15"), r.TargetDate)
	require.Equal(t, 12432, r.DaysDiff)
	require.Equal(t, []string{"1990-01-01"}, tracker.List())
}

func TestServiceTodayHonoursLocation(t *testing.T) {
	svc, _ := newTestService(t)
	svc.loc = time.FixedZone("UTC+8", 8*60*60)

	r, err := svc.Today(context.Background(), "1990-01-01")
	require.NoError(t, err)
	require.Equal(t, caldate.MustParse("2024-01-16"), r.TargetDate)
}

func TestServiceDateRejectsBadInput(t *testing.T) {
	svc, tracker := newTestService(t)

	_, err := svc.Date(context.Background(), "1990-13-01", "2024-01-15")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidDate))
	require.True(t, errors.Is(err, caldate.ErrInvalidDate))

	_, err = svc.Date(context.Background(), "1990-01-01", "yesterday")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidDate))

	_, err = svc.Date(context.Background(), "", "2024-01-15")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	require.Empty(t, tracker.List())
}

func TestServiceRange(t *testing.T) {
	svc, tracker := newTestService(t)

	out, err := svc.Range(context.Background(), RangeRequest{BirthDate: "1990-01-01", DaysBefore: 10, DaysAfter: 20})
	require.NoError(t, err)
	require.Len(t, out.Readings, 31)
	require.Equal(t, caldate.MustParse("2024-01-15"), out.Today)
	require.Equal(t, []string{"1990-01-01"}, tracker.List())

	out, err = svc.Range(context.Background(), RangeRequest{BirthDate: "1990-01-01"})
	require.NoError(t, err)
	require.Len(t, out.Readings, 1)
}

func TestServiceRangeRejectsWindow(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Range(context.Background(), RangeRequest{BirthDate: "1990-01-01", DaysBefore: -1})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Range(context.Background(), RangeRequest{BirthDate: "1990-01-01", DaysAfter: 367})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestServiceForecast(t *testing.T) {
	svc, _ := newTestService(t)

	days, err := svc.Forecast(context.Background(), "1990-01-01", "")
	require.NoError(t, err)
	require.Len(t, days, defaultForecastDays)
	require.Equal(t, caldate.MustParse("2024-01-15"), days[0].Date)

	days, err = svc.Forecast(context.Background(), "1990-01-01", "2024-03-01")
	require.NoError(t, err)
	require.Equal(t, caldate.MustParse("2024-03-07"), days[6].Date)
}

func TestServiceHistoryOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, b := range []string{"1990-01-01", "1985-05-05", "1990-01-01"} {
		_, err := svc.Today(ctx, b)
		require.NoError(t, err)
	}
	require.Equal(t, []string{"1990-01-01", "1985-05-05"}, svc.History(ctx))
}
