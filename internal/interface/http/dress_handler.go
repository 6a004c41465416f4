package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/cosmic-rhythm/internal/domain/advisory"
)

type dressTodayQuery struct {
	BirthDate string `form:"birth_date"`
}

type dressDateQuery struct {
	Date      string `form:"date" binding:"required"`
	BirthDate string `form:"birth_date"`
}

type dressRangeQuery struct {
	BirthDate  string `form:"birth_date"`
	DaysBefore int    `form:"days_before,default=1"`
	DaysAfter  int    `form:"days_after,default=6"`
}

// DressToday returns today's dress and diet advice.
func (h *Handler) DressToday(c *gin.Context) {
	var q dressTodayQuery
	if !bindQuery(c, &q) {
		return
	}
	day, err := h.dressSvc.Today(c.Request.Context(), q.BirthDate)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, day)
}

// DressDate returns the advice for date.
func (h *Handler) DressDate(c *gin.Context) {
	var q dressDateQuery
	if !bindQuery(c, &q) {
		return
	}
	day, err := h.dressSvc.Date(c.Request.Context(), q.Date, q.BirthDate)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, day)
}

// DressRange returns advice around today.
func (h *Handler) DressRange(c *gin.Context) {
	var q dressRangeQuery
	if !bindQuery(c, &q) {
		return
	}
	out, err := h.dressSvc.Range(c.Request.Context(), advisory.RangeRequest{
		BirthDate:  q.BirthDate,
		DaysBefore: q.DaysBefore,
		DaysAfter:  q.DaysAfter,
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, out)
}
