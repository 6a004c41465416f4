// Package mcpserver exposes the engines as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/yanqian/cosmic-rhythm/internal/domain/advisory"
	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Tools binds MCP tool handlers to the domain services.
type Tools struct {
	biorhythmSvc biorhythm.Service
	mayaSvc      maya.Service
	dressSvc     advisory.Service
	logger       *slog.Logger
}

// NewTools constructs the tool set.
func NewTools(biorhythmSvc biorhythm.Service, mayaSvc maya.Service, dressSvc advisory.Service, logger *slog.Logger) *Tools {
	return &Tools{
		biorhythmSvc: biorhythmSvc,
		mayaSvc:      mayaSvc,
		dressSvc:     dressSvc,
		logger:       logger.With("component", "mcp.tools"),
	}
}

// NewServer creates the MCP server with every tool registered.
func NewServer(tools *Tools) *server.MCPServer {
	s := server.NewMCPServer(
		"cosmic-rhythm",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	tools.Register(s)
	return s
}

// Register adds all tools to s.
func (t *Tools) Register(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("get_biorhythm_today",
		mcp.WithDescription("Biorhythm reading for today"),
		mcp.WithString("birth_date", mcp.Required(), mcp.Description("Birth date, YYYY-MM-DD")),
	), t.biorhythmToday)

	s.AddTool(mcp.NewTool("get_biorhythm_date",
		mcp.WithDescription("Biorhythm reading for a specific date"),
		mcp.WithString("birth_date", mcp.Required(), mcp.Description("Birth date, YYYY-MM-DD")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Target date, YYYY-MM-DD")),
	), t.biorhythmDate)

	s.AddTool(mcp.NewTool("get_biorhythm_range",
		mcp.WithDescription("Biorhythm readings for a window around today"),
		mcp.WithString("birth_date", mcp.Required(), mcp.Description("Birth date, YYYY-MM-DD")),
		mcp.WithNumber("days_before", mcp.DefaultNumber(10), mcp.Description("Days before today")),
		mcp.WithNumber("days_after", mcp.DefaultNumber(20), mcp.Description("Days after today")),
	), t.biorhythmRange)

	s.AddTool(mcp.NewTool("get_maya_date",
		mcp.WithDescription("Maya calendar reading for a date, today when omitted"),
		mcp.WithString("date", mcp.Description("Target date, YYYY-MM-DD")),
	), t.mayaDate)

	s.AddTool(mcp.NewTool("get_maya_birth_info",
		mcp.WithDescription("Maya birth chart"),
		mcp.WithString("birth_date", mcp.Required(), mcp.Description("Birth date, YYYY-MM-DD")),
	), t.mayaBirthInfo)

	s.AddTool(mcp.NewTool("get_dress_date",
		mcp.WithDescription("Dress colour and food advice for a date, today when omitted"),
		mcp.WithString("date", mcp.Description("Target date, YYYY-MM-DD")),
		mcp.WithString("birth_date", mcp.Description("Optional birth date for personal advice")),
	), t.dressDate)

	s.AddTool(mcp.NewTool("get_dress_range",
		mcp.WithDescription("Dress advice for a window around today"),
		mcp.WithString("birth_date", mcp.Description("Optional birth date for personal advice")),
		mcp.WithNumber("days_before", mcp.DefaultNumber(advisory.DefaultDaysBefore), mcp.Description("Days before today")),
		mcp.WithNumber("days_after", mcp.DefaultNumber(advisory.DefaultDaysAfter), mcp.Description("Days after today")),
	), t.dressRange)

	s.AddTool(mcp.NewTool("get_history",
		mcp.WithDescription("Recently queried birth dates"),
		mcp.WithString("kind", mcp.Enum("biorhythm", "maya", "all"), mcp.Description("Which history to list")),
	), t.history)
}

func (t *Tools) biorhythmToday(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	birth, err := req.RequireString("birth_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	reading, err := t.biorhythmSvc.Today(ctx, birth)
	return t.result("get_biorhythm_today", reading, err)
}

func (t *Tools) biorhythmDate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	birth, err := req.RequireString("birth_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	reading, err := t.biorhythmSvc.Date(ctx, birth, date)
	return t.result("get_biorhythm_date", reading, err)
}

func (t *Tools) biorhythmRange(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	birth, err := req.RequireString("birth_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := t.biorhythmSvc.Range(ctx, biorhythm.RangeRequest{
		BirthDate:  birth,
		DaysBefore: req.GetInt("days_before", 10),
		DaysAfter:  req.GetInt("days_after", 20),
	})
	return t.result("get_biorhythm_range", out, err)
}

func (t *Tools) mayaDate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reading, err := t.mayaSvc.Date(ctx, req.GetString("date", ""))
	return t.result("get_maya_date", reading, err)
}

func (t *Tools) mayaBirthInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	birth, err := req.RequireString("birth_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	info, err := t.mayaSvc.BirthInfo(ctx, birth)
	return t.result("get_maya_birth_info", info, err)
}

func (t *Tools) dressDate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := t.dressSvc.Date(ctx, req.GetString("date", ""), req.GetString("birth_date", ""))
	return t.result("get_dress_date", day, err)
}

func (t *Tools) dressRange(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := t.dressSvc.Range(ctx, advisory.RangeRequest{
		BirthDate:  req.GetString("birth_date", ""),
		DaysBefore: req.GetInt("days_before", advisory.DefaultDaysBefore),
		DaysAfter:  req.GetInt("days_after", advisory.DefaultDaysAfter),
	})
	return t.result("get_dress_range", out, err)
}

func (t *Tools) history(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := map[string][]string{}
	switch kind := req.GetString("kind", "all"); kind {
	case "biorhythm":
		out["biorhythm"] = t.biorhythmSvc.History(ctx)
	case "maya":
		out["maya"] = t.mayaSvc.History(ctx)
	default:
		out["biorhythm"] = t.biorhythmSvc.History(ctx)
		out["maya"] = t.mayaSvc.History(ctx)
	}
	return t.result("get_history", out, nil)
}

// result renders payload as JSON text. Domain failures become tool errors so
// the client sees the message instead of a protocol error.
func (t *Tools) result(tool string, payload any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		t.logger.Warn("mcp tool failed", "tool", tool, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(raw)), nil
}
