package api

import (
	"net/http"

	"sales_report/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitRoutes registers the report endpoints on the given Gin engine,
// binding each HTTP method and path to the appropriate handler function.
func InitRoutes(e *gin.Engine, salesService *sales.Service, logger *zap.Logger) {
	reportsHandler := NewReportsHandler(salesService, logger)

	e.POST("/reports", reportsHandler.handleCreateReport)
	e.POST("/reports/import", reportsHandler.handleImportReport)
	e.GET("/reports", reportsHandler.handleListReports)
	e.GET("/reports/:id", reportsHandler.handleGetReport)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
