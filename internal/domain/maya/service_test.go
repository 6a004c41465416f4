package maya

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

type stubCache struct {
	items  map[caldate.Date]DayReading
	getErr error
	putErr error
	gets   int
	puts   int
}

func (c *stubCache) Get(_ context.Context, date caldate.Date) (DayReading, bool, error) {
	c.gets++
	if c.getErr != nil {
		return DayReading{}, false, c.getErr
	}
	r, ok := c.items[date]
	return r, ok, nil
}

func (c *stubCache) Put(_ context.Context, reading DayReading, _ time.Duration) error {
	c.puts++
	if c.putErr != nil {
		return c.putErr
	}
	if c.items == nil {
		c.items = map[caldate.Date]DayReading{}
	}
	c.items[reading.Date] = reading
	return nil
}

func newTestService(t *testing.T, cache ReadingCache) (*service, *history.Tracker) {
	t.Helper()
	tracker := history.NewTracker(history.DefaultCapacity)
	svc := NewService(Config{}, defaultCalendar(t), cache, tracker, time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)
	svc.now = func() time.Time {
		return time.Date(2025, 9, 23, 8, 0, 0, 0, time.UTC)
	}
	return svc, tracker
}

func TestServiceToday(t *testing.T) {
	svc, _ := newTestService(t, nil)

	r, err := svc.Today(context.Background())
	require.NoError(t, err)
	require.Equal(t, caldate.MustParse("2025-09-23"), r.Date)
	require.Equal(t, 239, r.Kin)
}

func TestServiceDate(t *testing.T) {
	svc, _ := newTestService(t, nil)

	r, err := svc.Date(context.Background(), "2012/12/22")
	require.NoError(t, err)
	require.Equal(t, 1, r.Kin)

	_, err = svc.Date(context.Background(), "2025-02-30")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidDate))
	require.True(t, errors.Is(err, caldate.ErrInvalidDate))
}

func TestServiceRange(t *testing.T) {
	svc, _ := newTestService(t, nil)

	out, err := svc.Range(context.Background(), RangeRequest{DaysBefore: DefaultDaysBefore, DaysAfter: DefaultDaysAfter})
	require.NoError(t, err)
	require.Len(t, out.Readings, 7)
	require.Equal(t, caldate.MustParse("2025-09-20"), out.DateRange.Start)
	require.Equal(t, caldate.MustParse("2025-09-26"), out.DateRange.End)
	require.Equal(t, 239, out.Readings[3].Kin)
	require.Equal(t, 240, out.Readings[4].Kin)

	_, err = svc.Range(context.Background(), RangeRequest{DaysBefore: -1})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	_, err = svc.Range(context.Background(), RangeRequest{DaysAfter: 1000})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestServiceBirthInfoRecordsHistory(t *testing.T) {
	svc, tracker := newTestService(t, nil)
	ctx := context.Background()

	info, err := svc.BirthInfo(ctx, "1990-1-1")
	require.NoError(t, err)
	require.Equal(t, 190, info.Kin)

	_, err = svc.BirthInfo(ctx, "not-a-date")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidDate))
	_, err = svc.BirthInfo(ctx, " ")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.BirthInfo(ctx, "1985-05-05")
	require.NoError(t, err)
	require.Equal(t, []string{"1985-05-05", "1990-01-01"}, tracker.List())
	require.Equal(t, tracker.List(), svc.History(ctx))
}

func TestServiceUsesCache(t *testing.T) {
	cache := &stubCache{}
	svc, _ := newTestService(t, cache)
	ctx := context.Background()

	first, err := svc.Date(ctx, "2025-09-23")
	require.NoError(t, err)
	require.Equal(t, 1, cache.puts)

	second, err := svc.Date(ctx, "2025-09-23")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 2, cache.gets)
	require.Equal(t, 1, cache.puts)
}

func TestServiceIgnoresCacheFailures(t *testing.T) {
	cache := &stubCache{getErr: errors.New("down"), putErr: errors.New("down")}
	svc, _ := newTestService(t, cache)

	r, err := svc.Date(context.Background(), "2025-09-23")
	require.NoError(t, err)
	require.Equal(t, 239, r.Kin)
	require.Equal(t, 1, cache.puts)
}
