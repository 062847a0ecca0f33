package api

import (
	"errors"
	"net/http"

	"sales_report/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// reportsHandler holds the sales service and implements HTTP handlers for report operations.
type reportsHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(salesService *sales.Service, logger *zap.Logger) *reportsHandler {
	return &reportsHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// handleCreateReport handles the POST /reports endpoint.
func (h *reportsHandler) handleCreateReport(ctx *gin.Context) {
	var req struct {
		Data            *sales.Dataset `json:"data"`
		RevenueStrategy string         `json:"revenue_strategy"`
		BonusStrategy   string         `json:"bonus_strategy"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	report, err := h.salesService.GenerateReport(req.Data, req.RevenueStrategy, req.BonusStrategy)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, report)
}

// handleImportReport handles the POST /reports/import endpoint.
func (h *reportsHandler) handleImportReport(ctx *gin.Context) {
	var req struct {
		URL             string `json:"url" binding:"required,url"`
		RevenueStrategy string `json:"revenue_strategy"`
		BonusStrategy   string `json:"bonus_strategy"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	report, err := h.salesService.ImportReport(ctx.Request.Context(), req.URL, req.RevenueStrategy, req.BonusStrategy)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, report)
}

func (h *reportsHandler) handleGetReport(ctx *gin.Context) {
	report, err := h.salesService.GetReport(ctx.Param("id"))
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

func (h *reportsHandler) handleListReports(ctx *gin.Context) {
	reports, err := h.salesService.ListReports()
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"results": reports, "quantity": len(reports)})
}

func (h *reportsHandler) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, sales.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
	case errors.Is(err, sales.ErrInvalidInput),
		errors.Is(err, sales.ErrMissingStrategy),
		errors.Is(err, sales.ErrUnknownStrategy):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, sales.ErrDatasetUnavailable):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "dataset source unavailable"})
	default:
		h.logger.Error("unexpected error handling report request", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
