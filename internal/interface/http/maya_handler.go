package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
)

type dateQuery struct {
	Date string `form:"date" binding:"required"`
}

type mayaRangeQuery struct {
	DaysBefore int `form:"days_before,default=3"`
	DaysAfter  int `form:"days_after,default=3"`
}

type birthInfoRequest struct {
	BirthDate string `json:"birth_date" binding:"required"`
}

// MayaToday returns today's Maya reading.
func (h *Handler) MayaToday(c *gin.Context) {
	reading, err := h.mayaSvc.Today(c.Request.Context())
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, reading)
}

// MayaDate returns the Maya reading of date.
func (h *Handler) MayaDate(c *gin.Context) {
	var q dateQuery
	if !bindQuery(c, &q) {
		return
	}
	reading, err := h.mayaSvc.Date(c.Request.Context(), q.Date)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, reading)
}

// MayaRange returns readings around today.
func (h *Handler) MayaRange(c *gin.Context) {
	var q mayaRangeQuery
	if !bindQuery(c, &q) {
		return
	}
	out, err := h.mayaSvc.Range(c.Request.Context(), maya.RangeRequest{DaysBefore: q.DaysBefore, DaysAfter: q.DaysAfter})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

// MayaBirthInfo returns the birth chart for the posted birth_date.
func (h *Handler) MayaBirthInfo(c *gin.Context) {
	var req birthInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	info, err := h.mayaSvc.BirthInfo(c.Request.Context(), req.BirthDate)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, info)
}

// MayaHistory lists recently charted birth dates.
func (h *Handler) MayaHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": h.mayaSvc.History(c.Request.Context())})
}
