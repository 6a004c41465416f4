package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/infra/chart"
)

type birthQuery struct {
	BirthDate string `form:"birth_date" binding:"required"`
}

type biorhythmDateQuery struct {
	BirthDate string `form:"birth_date" binding:"required"`
	Date      string `form:"date" binding:"required"`
}

type biorhythmRangeQuery struct {
	BirthDate  string `form:"birth_date" binding:"required"`
	DaysBefore int    `form:"days_before,default=10"`
	DaysAfter  int    `form:"days_after,default=20"`
}

type forecastQuery struct {
	BirthDate string `form:"birth_date" binding:"required"`
	Start     string `form:"start"`
}

// BiorhythmToday returns today's reading for birth_date.
func (h *Handler) BiorhythmToday(c *gin.Context) {
	var q birthQuery
	if !bindQuery(c, &q) {
		return
	}
	reading, err := h.biorhythmSvc.Today(c.Request.Context(), q.BirthDate)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, reading)
}

// BiorhythmDate returns the reading for birth_date on date.
func (h *Handler) BiorhythmDate(c *gin.Context) {
	var q biorhythmDateQuery
	if !bindQuery(c, &q) {
		return
	}
	reading, err := h.biorhythmSvc.Date(c.Request.Context(), q.BirthDate, q.Date)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, reading)
}

// BiorhythmRange returns readings around today.
func (h *Handler) BiorhythmRange(c *gin.Context) {
	out, ok := h.biorhythmRange(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, out)
}

// BiorhythmForecast returns the compact multi-day forecast.
func (h *Handler) BiorhythmForecast(c *gin.Context) {
	var q forecastQuery
	if !bindQuery(c, &q) {
		return
	}
	days, err := h.biorhythmSvc.Forecast(c.Request.Context(), q.BirthDate, q.Start)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"birth_date": q.BirthDate, "forecast": days})
}

// BiorhythmChart renders the range as a PNG.
func (h *Handler) BiorhythmChart(c *gin.Context) {
	out, ok := h.biorhythmRange(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := chart.RenderBiorhythm(&buf, out); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "chart_failed", "failed to render chart", err))
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// BiorhythmHistory lists recently queried birth dates.
func (h *Handler) BiorhythmHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": h.biorhythmSvc.History(c.Request.Context())})
}

func (h *Handler) biorhythmRange(c *gin.Context) (biorhythm.RangeReading, bool) {
	var q biorhythmRangeQuery
	if !bindQuery(c, &q) {
		return biorhythm.RangeReading{}, false
	}
	out, err := h.biorhythmSvc.Range(c.Request.Context(), biorhythm.RangeRequest{
		BirthDate:  q.BirthDate,
		DaysBefore: q.DaysBefore,
		DaysAfter:  q.DaysAfter,
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return biorhythm.RangeReading{}, false
	}
	return out, true
}
