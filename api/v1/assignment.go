package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunhub/dto"
	"github.com/volunhub/middleware"
	"github.com/volunhub/models"
	"github.com/volunhub/services"
)

// AssignmentController handles assignment lifecycle endpoints
type AssignmentController struct {
	assignmentService *services.AssignmentService
	volunteerService  *services.VolunteerService
}

// NewAssignmentController creates a new assignment controller
func NewAssignmentController(
	assignmentService *services.AssignmentService,
	volunteerService *services.VolunteerService,
) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		volunteerService:  volunteerService,
	}
}

// RegisterRoutes registers assignment routes. Creation is admin only; status
// updates are open to admins and to the assigned volunteer.
func (c *AssignmentController) RegisterRoutes(router *gin.RouterGroup) {
	assignments := router.Group("/assignments")
	{
		assignments.POST("", middleware.AdminMiddleware(), c.CreateAssignment)
		assignments.GET("/:id", c.GetAssignment)
		assignments.PATCH("/:id/status", c.UpdateStatus)
		assignments.GET("/volunteer/:id", c.ListByVolunteer)
		assignments.GET("/project/:id", c.ListByProject)
	}
}

// volunteerTransitions are the lifecycle moves a volunteer may make on their
// own assignment. Admins are not restricted here.
var volunteerTransitions = map[models.AssignmentStatus]map[models.AssignmentStatus]bool{
	models.AssignmentPending:  {models.AssignmentAccepted: true, models.AssignmentRejected: true},
	models.AssignmentAccepted: {models.AssignmentCompleted: true},
}

// CreateAssignment matches a volunteer skill link against a project
// requirement and opens a pending assignment
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	assignment, err := c.assignmentService.CreateAssignment(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   assignment,
	})
}

// GetAssignment retrieves one enriched assignment
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	assignment, err := c.assignmentService.GetAssignment(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   assignment,
	})
}

// UpdateStatus moves an assignment through its lifecycle. Admins may request
// any transition; volunteers only move their own assignments forward.
func (c *AssignmentController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateAssignmentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, err)
		return
	}

	assignmentID := ctx.Param("id")

	roleValue, _ := ctx.Get("role")
	role, _ := roleValue.(string)

	if role != "admin" {
		current, err := c.assignmentService.GetAssignment(assignmentID)
		if err != nil {
			respondError(ctx, err)
			return
		}

		userIDValue, _ := ctx.Get("userId")
		userID, _ := userIDValue.(string)
		if current.Volunteer == nil || current.Volunteer.UserID != userID {
			ctx.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Not allowed to modify this assignment",
			})
			return
		}

		if !volunteerTransitions[current.Status][req.Status] {
			ctx.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Transition not allowed",
			})
			return
		}
	}

	assignment, err := c.assignmentService.UpdateStatus(assignmentID, req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   assignment,
	})
}

// ListByVolunteer retrieves all assignments of one volunteer, including those
// held through removed skill links
func (c *AssignmentController) ListByVolunteer(ctx *gin.Context) {
	volunteerID := ctx.Param("id")

	roleValue, _ := ctx.Get("role")
	if role, _ := roleValue.(string); role != "admin" {
		volunteer, err := c.volunteerService.GetVolunteer(volunteerID)
		if err != nil {
			respondError(ctx, err)
			return
		}

		userIDValue, _ := ctx.Get("userId")
		userID, _ := userIDValue.(string)
		if volunteer.UserID != userID {
			ctx.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Not allowed to view these assignments",
			})
			return
		}
	}

	assignments, err := c.assignmentService.GetAssignmentsByVolunteer(volunteerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   assignments,
	})
}

// ListByProject retrieves all assignments opened against one project
func (c *AssignmentController) ListByProject(ctx *gin.Context) {
	assignments, err := c.assignmentService.GetAssignmentsByProject(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   assignments,
	})
}
