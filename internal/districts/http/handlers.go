package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rozgar-darpan/go-mgnrega-backend/internal/districts/catalog"
	districtdomain "github.com/rozgar-darpan/go-mgnrega-backend/internal/districts/domain"
	perfdomain "github.com/rozgar-darpan/go-mgnrega-backend/internal/performance/domain"
)

// PerformanceService is what the handler needs from the performance layer.
type PerformanceService interface {
	GetDistrictPerformance(ctx context.Context, district districtdomain.District) (*perfdomain.PerformanceRecord, error)
}

type Handler struct {
	catalog *catalog.Catalog
	perf    PerformanceService
	log     *zap.SugaredLogger
}

func NewHandler(cat *catalog.Catalog, perf PerformanceService, log *zap.SugaredLogger) *Handler {
	return &Handler{catalog: cat, perf: perf, log: log}
}

// Register attaches district routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/district/:code", h.getPerformance)
	rg.GET("/districts", h.listByState)
	rg.GET("/districts/search", h.search)
}

func (h *Handler) getPerformance(c *gin.Context) {
	code := c.Param("code")

	district, err := h.catalog.FindByCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "District not found"})
		return
	}

	rec, err := h.perf.GetDistrictPerformance(c.Request.Context(), district)
	if err != nil {
		switch {
		case errors.Is(err, perfdomain.ErrNoData):
			c.JSON(http.StatusNotFound, gin.H{"error": "No performance data for this district"})
		default:
			// Detail stays in the server log; the client gets a generic message.
			h.log.Errorw("failed to fetch district performance", "district_code", code, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch district data"})
		}
		return
	}

	c.JSON(http.StatusOK, toResponse(rec))
}

func (h *Handler) listByState(c *gin.Context) {
	states, grouped := h.catalog.ListByState()

	out := make([]gin.H, 0, len(states))
	for _, state := range states {
		out = append(out, gin.H{
			"state":     state,
			"districts": grouped[state],
		})
	}

	c.JSON(http.StatusOK, gin.H{"states": out})
}

func (h *Handler) search(c *gin.Context) {
	results := h.catalog.Search(c.Query("q"))
	if results == nil {
		results = []districtdomain.District{}
	}
	c.JSON(http.StatusOK, gin.H{"districts": results})
}
