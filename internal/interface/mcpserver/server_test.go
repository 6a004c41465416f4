package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-rhythm/internal/domain/advisory"
	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/domain/history"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
)

func newTestTools(t *testing.T) *Tools {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cal, err := maya.NewCalendar(maya.DefaultAnchor)
	require.NoError(t, err)
	return NewTools(
		biorhythm.NewService(biorhythm.Config{}, history.NewTracker(history.DefaultCapacity), time.UTC, logger),
		maya.NewService(maya.Config{}, cal, nil, history.NewTracker(history.DefaultCapacity), time.UTC, logger),
		advisory.NewService(advisory.Config{}, cal, time.UTC, logger),
		logger,
	)
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestNewServerRegistersTools(t *testing.T) {
	require.NotNil(t, NewServer(newTestTools(t)))
}

func TestBiorhythmDateTool(t *testing.T) {
	tools := newTestTools(t)

	res, err := tools.biorhythmDate(context.Background(), callRequest(map[string]any{
		"birth_date": "1990-01-01",
		"date":       "2024-01-15",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var reading biorhythm.Reading
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &reading))
	require.Equal(t, 12432, reading.DaysDiff)
	require.Equal(t, biorhythm.StateCritical, reading.Intellectual.State)
}

func TestBiorhythmToolMissingArgument(t *testing.T) {
	res, err := newTestTools(t).biorhythmToday(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	require.True(t, res.IsError)
}

func TestBiorhythmToolInvalidDate(t *testing.T) {
	res, err := newTestTools(t).biorhythmToday(context.Background(), callRequest(map[string]any{
		"birth_date": "1990-02-30",
	}))
	require.NoError(t, err)
	require.True(t, res.IsError)
	require.Contains(t, resultText(t, res), "birth_date")
}

func TestBiorhythmRangeTool(t *testing.T) {
	res, err := newTestTools(t).biorhythmRange(context.Background(), callRequest(map[string]any{
		"birth_date":  "1990-01-01",
		"days_before": 2,
		"days_after":  2,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out biorhythm.RangeReading
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	require.Len(t, out.Readings, 5)
}

func TestMayaDateTool(t *testing.T) {
	res, err := newTestTools(t).mayaDate(context.Background(), callRequest(map[string]any{
		"date": "2025-09-23",
	}))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	require.Equal(t, "KIN239", got["maya_kin"])
}

func TestMayaBirthInfoToolAndHistory(t *testing.T) {
	tools := newTestTools(t)
	ctx := context.Background()

	res, err := tools.mayaBirthInfo(ctx, callRequest(map[string]any{"birth_date": "1990-01-01"}))
	require.NoError(t, err)
	var info maya.BirthInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &info))
	require.Equal(t, 190, info.Kin)

	res, err = tools.history(ctx, callRequest(map[string]any{"kind": "maya"}))
	require.NoError(t, err)
	require.JSONEq(t, `{"maya":["1990-01-01"]}`, resultText(t, res))

	res, err = tools.history(ctx, callRequest(map[string]any{}))
	require.NoError(t, err)
	require.JSONEq(t, `{"biorhythm":[],"maya":["1990-01-01"]}`, resultText(t, res))
}

func TestDressTools(t *testing.T) {
	tools := newTestTools(t)
	ctx := context.Background()

	res, err := tools.dressDate(ctx, callRequest(map[string]any{"date": "2025-09-23"}))
	require.NoError(t, err)
	var day advisory.DayAdvice
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &day))
	require.Equal(t, maya.ColorBlue, day.Dress.Family)
	require.Nil(t, day.Personal)

	res, err = tools.dressRange(ctx, callRequest(map[string]any{}))
	require.NoError(t, err)
	var out advisory.RangeAdvice
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	require.Len(t, out.Days, advisory.DefaultDaysBefore+advisory.DefaultDaysAfter+1)
}
