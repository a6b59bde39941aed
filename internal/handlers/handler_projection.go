package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wealthsight/wealth_projection_app/internal/core/domain"
	portssvc "github.com/wealthsight/wealth_projection_app/internal/core/ports/services"
	"github.com/wealthsight/wealth_projection_app/internal/dto"
	"github.com/wealthsight/wealth_projection_app/internal/middleware"
)

// projectionHandler handles HTTP requests for net worth / cashflow projections
type projectionHandler struct {
	projectionService portssvc.ProjectionSvcFacade
}

// newProjectionHandler creates a new projectionHandler
func newProjectionHandler(ps portssvc.ProjectionSvcFacade) *projectionHandler {
	return &projectionHandler{
		projectionService: ps,
	}
}

// parseGranularityParam maps the request's optional granularity field to the
// domain enum, defaulting to monthly buckets.
func parseGranularityParam(s string) (domain.Granularity, error) {
	if s == "" {
		return domain.GranularityMonthly, nil
	}
	return domain.ParseGranularity(s)
}

// registerProjectionRoutes registers routes related to projections
func registerProjectionRoutes(rg *gin.RouterGroup, projectionService portssvc.ProjectionSvcFacade) {
	h := newProjectionHandler(projectionService)

	projections := rg.Group("/projections")
	{
		projections.POST("", h.createProjection)
	}
}

// createProjection godoc
// @Summary Run a net worth and cashflow projection
// @Description Projects asset values, liability balances, net worth and cashflow across the requested horizon from a snapshot of assets, liabilities and recurring expenses
// @Tags projections
// @Accept json
// @Produce json
// @Param projection body dto.ProjectionRequest true "Projection snapshot and horizon"
// @Success 200 {object} dto.ProjectionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to compute projection"
// @Router /projections [post]
func (h *projectionHandler) createProjection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid projection request payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	granularity, err := parseGranularityParam(req.Granularity)
	if err != nil {
		logger.Warn("Invalid granularity", slog.String("granularity", req.Granularity))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid granularity. Use monthly or annual"})
		return
	}

	snapshot, err := req.ToSnapshot()
	if err != nil {
		logger.Warn("Malformed projection snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(
		slog.Int("horizon_years", req.HorizonYears),
		slog.String("granularity", string(granularity)),
		slog.Int("assets", len(snapshot.Assets)),
		slog.Int("liabilities", len(snapshot.Liabilities)),
	)
	logger.Info("Received request to compute projection")

	result, err := h.projectionService.Project(c.Request.Context(), snapshot, req.HorizonYears, granularity)
	if err != nil {
		handleEngineError(c, logger, err, "Failed to compute projection")
		return
	}

	logger.Info("Projection computed successfully", slog.Int("periods", len(result.Dates)))
	c.JSON(http.StatusOK, dto.ToProjectionResponse(result))
}
