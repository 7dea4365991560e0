package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunhub/dto"
	"github.com/volunhub/middleware"
	"github.com/volunhub/services"
)

// VolunteerController handles volunteer profile and skill link endpoints
type VolunteerController struct {
	volunteerService      *services.VolunteerService
	volunteerSkillService *services.VolunteerSkillService
}

// NewVolunteerController creates a new volunteer controller
func NewVolunteerController(
	volunteerService *services.VolunteerService,
	volunteerSkillService *services.VolunteerSkillService,
) *VolunteerController {
	return &VolunteerController{
		volunteerService:      volunteerService,
		volunteerSkillService: volunteerSkillService,
	}
}

// RegisterRoutes registers volunteer routes. Profile and skill link mutations
// are allowed for the profile owner or an admin.
func (c *VolunteerController) RegisterRoutes(router *gin.RouterGroup) {
	volunteers := router.Group("/volunteers")
	{
		volunteers.GET("", c.ListVolunteers)
		volunteers.GET("/:id", c.GetVolunteer)
		volunteers.POST("", middleware.AdminMiddleware(), c.CreateVolunteer)
		volunteers.PUT("/:id", c.UpdateVolunteer)
		volunteers.DELETE("/:id", middleware.AdminMiddleware(), c.DeleteVolunteer)

		volunteers.GET("/:id/skills", c.ListSkills)
		volunteers.POST("/:id/skills", c.AddSkill)
		volunteers.DELETE("/:id/skills/:skillId", c.RemoveSkill)
	}
}

// ownsProfile reports whether the authenticated user owns the volunteer
// profile or is an admin
func (c *VolunteerController) ownsProfile(ctx *gin.Context, volunteerID string) (bool, error) {
	roleValue, _ := ctx.Get("role")
	if role, ok := roleValue.(string); ok && role == "admin" {
		return true, nil
	}

	volunteer, err := c.volunteerService.GetVolunteer(volunteerID)
	if err != nil {
		return false, err
	}

	userIDValue, _ := ctx.Get("userId")
	userID, _ := userIDValue.(string)
	return volunteer.UserID == userID, nil
}

// ListVolunteers retrieves all active volunteers
func (c *VolunteerController) ListVolunteers(ctx *gin.Context) {
	volunteers, err := c.volunteerService.ListVolunteers()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   volunteers,
	})
}

// GetVolunteer retrieves one volunteer profile
func (c *VolunteerController) GetVolunteer(ctx *gin.Context) {
	volunteer, err := c.volunteerService.GetVolunteer(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   volunteer,
	})
}

// CreateVolunteer creates a volunteer profile for an existing user account
func (c *VolunteerController) CreateVolunteer(ctx *gin.Context) {
	var req dto.CreateVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	volunteer, err := c.volunteerService.CreateVolunteer(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   volunteer,
	})
}

// UpdateVolunteer changes the availability status of a volunteer
func (c *VolunteerController) UpdateVolunteer(ctx *gin.Context) {
	volunteerID := ctx.Param("id")

	owns, err := c.ownsProfile(ctx, volunteerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !owns {
		ctx.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not allowed to modify this volunteer",
		})
		return
	}

	var req dto.UpdateVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	volunteer, err := c.volunteerService.UpdateVolunteer(volunteerID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   volunteer,
	})
}

// DeleteVolunteer soft-deletes a volunteer profile
func (c *VolunteerController) DeleteVolunteer(ctx *gin.Context) {
	if err := c.volunteerService.DeleteVolunteer(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Volunteer deleted successfully",
	})
}

// ListSkills returns the volunteer's active skill links
func (c *VolunteerController) ListSkills(ctx *gin.Context) {
	response, err := c.volunteerSkillService.ListSkills(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// AddSkill links a catalog skill to a volunteer
func (c *VolunteerController) AddSkill(ctx *gin.Context) {
	volunteerID := ctx.Param("id")

	owns, err := c.ownsProfile(ctx, volunteerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !owns {
		ctx.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not allowed to modify this volunteer",
		})
		return
	}

	var req dto.AddSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	link, err := c.volunteerSkillService.AddSkill(ctx.Request.Context(), volunteerID, req.SkillID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   link,
	})
}

// RemoveSkill soft-deletes the link between a volunteer and a skill
func (c *VolunteerController) RemoveSkill(ctx *gin.Context) {
	volunteerID := ctx.Param("id")

	owns, err := c.ownsProfile(ctx, volunteerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !owns {
		ctx.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Not allowed to modify this volunteer",
		})
		return
	}

	if err := c.volunteerSkillService.RemoveSkill(ctx.Request.Context(), volunteerID, ctx.Param("skillId")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Skill removed successfully",
	})
}
