package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-rhythm/internal/domain/advisory"
	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/domain/history"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
)

func testServices(t *testing.T) Services {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cal, err := maya.NewCalendar(maya.DefaultAnchor)
	require.NoError(t, err)
	return Services{
		Biorhythm: biorhythm.NewService(biorhythm.Config{}, history.NewTracker(history.DefaultCapacity), time.UTC, logger),
		Maya:      maya.NewService(maya.Config{}, cal, nil, history.NewTracker(history.DefaultCapacity), time.UTC, logger),
		Dress:     advisory.NewService(advisory.Config{}, cal, time.UTC, logger),
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(testServices(t))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBiorhythmCommand(t *testing.T) {
	out, err := run(t, "biorhythm", "--birth", "1990-01-01", "--date", "2024-01-15")
	require.NoError(t, err)

	var reading biorhythm.Reading
	require.NoError(t, json.Unmarshal([]byte(out), &reading))
	require.Equal(t, 12432, reading.DaysDiff)
}

func TestBiorhythmCommandRequiresBirth(t *testing.T) {
	_, err := run(t, "biorhythm")
	require.Error(t, err)
}

func TestBiorhythmCommandRejectsBadDate(t *testing.T) {
	_, err := run(t, "biorhythm", "--birth", "1990-13-01")
	require.Error(t, err)
}

func TestForecastCommand(t *testing.T) {
	out, err := run(t, "forecast", "--birth", "1990-01-01", "--start", "2024-01-15")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	require.True(t, strings.HasPrefix(lines[0], "2024-01-15  Monday"))
}

func TestMayaCommand(t *testing.T) {
	out, err := run(t, "maya", "--date", "2025-09-23")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "KIN239", got["maya_kin"])
}

func TestMayaRangeCommand(t *testing.T) {
	out, err := run(t, "maya", "--range", "--days-before", "1", "--days-after", "1")
	require.NoError(t, err)

	var got maya.RangeReading
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Readings, 3)
}

func TestBirthCommand(t *testing.T) {
	out, err := run(t, "birth", "--birth", "1990-01-01")
	require.NoError(t, err)

	var info maya.BirthInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Equal(t, 190, info.Kin)
}

func TestDressCommand(t *testing.T) {
	out, err := run(t, "dress", "--date", "2025-09-23", "--birth", "1990-01-01")
	require.NoError(t, err)

	var day advisory.DayAdvice
	require.NoError(t, json.Unmarshal([]byte(out), &day))
	require.Equal(t, maya.ColorBlue, day.Dress.Family)
	require.NotNil(t, day.Personal)
}

func TestChartCommandWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	_, err := run(t, "chart", "--birth", "1990-01-01", "--days-before", "2", "--days-after", "2", "--out", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}
