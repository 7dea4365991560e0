package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunhub/middleware"
	"github.com/volunhub/services"
)

// ExportController handles CSV export endpoints
type ExportController struct {
	exportService *services.ExportService
}

// NewExportController creates a new export controller
func NewExportController(exportService *services.ExportService) *ExportController {
	return &ExportController{exportService: exportService}
}

// RegisterRoutes registers export routes. Exports are admin only.
func (c *ExportController) RegisterRoutes(router *gin.RouterGroup) {
	exports := router.Group("/export", middleware.AdminMiddleware())
	{
		exports.GET("", c.ListEntities)
		exports.GET("/:entity", c.ExportEntity)
	}
}

// ListEntities returns the exportable entity names
func (c *ExportController) ListEntities(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   c.exportService.Entities(),
	})
}

// ExportEntity streams one entity table as a CSV attachment
func (c *ExportController) ExportEntity(ctx *gin.Context) {
	entity := ctx.Param("entity")

	// Buffer the CSV so errors can still produce a JSON response
	var buf bytes.Buffer
	if err := c.exportService.WriteCSV(entity, &buf); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", entity))
	ctx.Data(http.StatusOK, "text/csv", buf.Bytes())
}
