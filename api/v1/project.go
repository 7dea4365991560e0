package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/volunhub/dto"
	"github.com/volunhub/middleware"
	"github.com/volunhub/services"
)

// ProjectController handles project, requirement and matching endpoints
type ProjectController struct {
	projectService      *services.ProjectService
	projectSkillService *services.ProjectSkillService
	matcherService      *services.MatcherService
}

// NewProjectController creates a new project controller
func NewProjectController(
	projectService *services.ProjectService,
	projectSkillService *services.ProjectSkillService,
	matcherService *services.MatcherService,
) *ProjectController {
	return &ProjectController{
		projectService:      projectService,
		projectSkillService: projectSkillService,
		matcherService:      matcherService,
	}
}

// RegisterRoutes registers project routes. Mutations are admin only.
func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", c.ListProjects)
		projects.GET("/:id", c.GetProject)
		projects.POST("", middleware.AdminMiddleware(), c.CreateProject)
		projects.PUT("/:id", middleware.AdminMiddleware(), c.UpdateProject)
		projects.DELETE("/:id", middleware.AdminMiddleware(), c.DeleteProject)

		projects.GET("/:id/skills", c.ListSkills)
		projects.POST("/:id/skills", middleware.AdminMiddleware(), c.AddSkill)
		projects.DELETE("/:id/skills/:skillId", middleware.AdminMiddleware(), c.RemoveSkill)

		projects.GET("/:id/matching-volunteers", c.FindMatchingVolunteers)
	}
}

// ListProjects retrieves projects with pagination, filtering and sorting
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))

	filter := dto.ProjectFilter{
		Search:    ctx.Query("search"),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
		Page:      page,
		PageSize:  pageSize,
	}

	response, err := c.projectService.ListProjects(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetProject retrieves one project
func (c *ProjectController) GetProject(ctx *gin.Context) {
	project, err := c.projectService.GetProject(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject registers a new project
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	project, err := c.projectService.CreateProject(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProject applies a partial update to a project
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	project, err := c.projectService.UpdateProject(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// DeleteProject soft-deletes a project together with its requirements
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	if err := c.projectService.DeleteProject(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

// ListSkills returns the project's active skill requirements
func (c *ProjectController) ListSkills(ctx *gin.Context) {
	response, err := c.projectSkillService.ListSkills(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// AddSkill adds a skill requirement to a project
func (c *ProjectController) AddSkill(ctx *gin.Context) {
	var req dto.AddSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	requirement, err := c.projectSkillService.AddSkill(ctx.Request.Context(), ctx.Param("id"), req.SkillID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   requirement,
	})
}

// RemoveSkill soft-deletes a skill requirement from a project
func (c *ProjectController) RemoveSkill(ctx *gin.Context) {
	err := c.projectSkillService.RemoveSkill(ctx.Request.Context(), ctx.Param("id"), ctx.Param("skillId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Skill removed successfully",
	})
}

// FindMatchingVolunteers lists active volunteers holding at least one of the
// project's required skills
func (c *ProjectController) FindMatchingVolunteers(ctx *gin.Context) {
	matches, err := c.matcherService.FindMatchingVolunteers(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   matches,
	})
}
