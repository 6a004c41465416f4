package advisory

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
	apperrors "github.com/yanqian/cosmic-rhythm/pkg/errors"
)

func newTestService(t *testing.T) *service {
	t.Helper()
	cal, err := maya.NewCalendar(maya.DefaultAnchor)
	require.NoError(t, err)
	svc := NewService(Config{}, cal, time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)
	svc.now = func() time.Time {
		return time.Date(2025, 9, 23, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestForStateCoversEveryState(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range biorhythm.States {
		a := ForState(s)
		require.NotEmpty(t, a.Color)
		require.NotEmpty(t, a.Food)
		seen[a.Color] = true
	}
	require.Len(t, seen, len(biorhythm.States))
	require.Equal(t, ForState(biorhythm.StateNormal), ForState(biorhythm.State("unknown")))
}

func TestForFamilyReturnsCopies(t *testing.T) {
	d := ForFamily(maya.ColorBlue)
	require.Equal(t, maya.ColorBlue, d.Family)
	d.Colors[0] = "changed"
	require.NotEqual(t, "changed", ForFamily(maya.ColorBlue).Colors[0])
}

func TestServiceDateUsesSealFamily(t *testing.T) {
	svc := newTestService(t)

	day, err := svc.Date(context.Background(), "2025-09-23", "")
	require.NoError(t, err)
	require.Equal(t, 239, day.Kin)
	require.Equal(t, "Blue Storm", day.Seal)
	require.Equal(t, maya.ColorBlue, day.Dress.Family)
	require.Nil(t, day.Personal)
}

func TestServiceDateWithBirthAddsPersonal(t *testing.T) {
	svc := newTestService(t)

	day, err := svc.Today(context.Background(), "1990-01-01")
	require.NoError(t, err)
	require.Equal(t, caldate.MustParse("2025-09-23"), day.Date)
	require.NotNil(t, day.Personal)

	reading := biorhythm.Compute(caldate.MustParse("1990-01-01"), day.Date)
	require.Equal(t, ForState(reading.Physical.State), day.Personal.Physical)
}

func TestServiceRejectsBadInput(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Date(ctx, "2025-13-01", "")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidDate))
	_, err = svc.Date(ctx, "", "nope")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidDate))
	_, err = svc.Range(ctx, RangeRequest{DaysBefore: -2})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestServiceRangeDefaults(t *testing.T) {
	svc := newTestService(t)

	out, err := svc.Range(context.Background(), RangeRequest{DaysBefore: DefaultDaysBefore, DaysAfter: DefaultDaysAfter})
	require.NoError(t, err)
	require.Len(t, out.Days, 8)
	require.Equal(t, caldate.MustParse("2025-09-22"), out.Start)
	require.Equal(t, caldate.MustParse("2025-09-29"), out.End)
	for i := 1; i < len(out.Days); i++ {
		require.Equal(t, out.Days[i-1].Kin%maya.TzolkinCycle+1, out.Days[i].Kin)
	}
}
