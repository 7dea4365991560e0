package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/volunhub/cache"
	"github.com/volunhub/middleware"
	"github.com/volunhub/services"
	"gorm.io/gorm"
)

// RegisterRoutes registers all v1 API routes. The cache client may be nil.
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB, cacheClient *cache.Client) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints manage their own middleware
	authController := NewAuthController(services.NewAuthService(db))
	authController.RegisterRoutes(router)

	// Everything else requires authentication
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware())

	skillController := NewSkillController(services.NewSkillService(db))
	skillController.RegisterRoutes(authed)

	categoryController := NewCategoryController(services.NewCategoryService(db))
	categoryController.RegisterRoutes(authed)

	volunteerController := NewVolunteerController(
		services.NewVolunteerService(db),
		services.NewVolunteerSkillService(db, cacheClient),
	)
	volunteerController.RegisterRoutes(authed)

	projectController := NewProjectController(
		services.NewProjectService(db),
		services.NewProjectSkillService(db, cacheClient),
		services.NewMatcherService(db, cacheClient),
	)
	projectController.RegisterRoutes(authed)

	assignmentController := NewAssignmentController(
		services.NewAssignmentService(db),
		services.NewVolunteerService(db),
	)
	assignmentController.RegisterRoutes(authed)

	exportController := NewExportController(services.NewExportService(db))
	exportController.RegisterRoutes(authed)
}
