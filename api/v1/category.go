package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunhub/dto"
	"github.com/volunhub/middleware"
	"github.com/volunhub/services"
)

// CategoryController handles project category endpoints
type CategoryController struct {
	categoryService *services.CategoryService
}

// NewCategoryController creates a new category controller
func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// RegisterRoutes registers category routes. Mutations are admin only.
func (c *CategoryController) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", c.ListCategories)
		categories.GET("/:id", c.GetCategory)
		categories.POST("", middleware.AdminMiddleware(), c.CreateCategory)
		categories.PUT("/:id", middleware.AdminMiddleware(), c.UpdateCategory)
		categories.DELETE("/:id", middleware.AdminMiddleware(), c.DeleteCategory)
	}
}

// ListCategories retrieves all active categories
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	categories, err := c.categoryService.ListCategories()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   categories,
	})
}

// GetCategory retrieves one category
func (c *CategoryController) GetCategory(ctx *gin.Context) {
	category, err := c.categoryService.GetCategory(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   category,
	})
}

// CreateCategory adds a category
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	category, err := c.categoryService.CreateCategory(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   category,
	})
}

// UpdateCategory applies a partial update to a category
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	category, err := c.categoryService.UpdateCategory(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   category,
	})
}

// DeleteCategory removes a category
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	if err := c.categoryService.DeleteCategory(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category deleted successfully",
	})
}
