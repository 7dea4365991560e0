package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunhub/dto"
	"github.com/volunhub/middleware"
	"github.com/volunhub/services"
)

// SkillController handles skill catalog endpoints
type SkillController struct {
	skillService *services.SkillService
}

// NewSkillController creates a new skill controller
func NewSkillController(skillService *services.SkillService) *SkillController {
	return &SkillController{skillService: skillService}
}

// RegisterRoutes registers skill catalog routes. Mutations are admin only.
func (c *SkillController) RegisterRoutes(router *gin.RouterGroup) {
	skills := router.Group("/skills")
	{
		skills.GET("", c.ListSkills)
		skills.GET("/:id", c.GetSkill)
		skills.POST("", middleware.AdminMiddleware(), c.CreateSkill)
		skills.PUT("/:id", middleware.AdminMiddleware(), c.UpdateSkill)
		skills.DELETE("/:id", middleware.AdminMiddleware(), c.DeleteSkill)
	}
}

// ListSkills retrieves the active skill catalog
func (c *SkillController) ListSkills(ctx *gin.Context) {
	skills, err := c.skillService.ListSkills()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   skills,
	})
}

// GetSkill retrieves one skill
func (c *SkillController) GetSkill(ctx *gin.Context) {
	skill, err := c.skillService.GetSkill(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   skill,
	})
}

// CreateSkill adds a skill to the catalog
func (c *SkillController) CreateSkill(ctx *gin.Context) {
	var req dto.CreateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	skill, err := c.skillService.CreateSkill(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   skill,
	})
}

// UpdateSkill renames a skill
func (c *SkillController) UpdateSkill(ctx *gin.Context) {
	var req dto.UpdateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	skill, err := c.skillService.UpdateSkill(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   skill,
	})
}

// DeleteSkill removes a skill from the catalog
func (c *SkillController) DeleteSkill(ctx *gin.Context) {
	if err := c.skillService.DeleteSkill(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Skill deleted successfully",
	})
}
