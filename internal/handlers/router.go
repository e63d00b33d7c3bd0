package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AntonMilev36/fitness-service/internal/models"
	"github.com/AntonMilev36/fitness-service/internal/repositories"
	"github.com/AntonMilev36/fitness-service/internal/services"
	"github.com/AntonMilev36/fitness-service/internal/utils"
)

type HandlerManager struct {
	userHandler     *UserHandler
	exerciseHandler *ExerciseHandler
	programHandler  *ProgramHandler
	trainerHandler  *TrainerHandler
	reportHandler   *ReportHandler

	tokenService services.TokenService
	repo         repositories.Repository
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	repo repositories.Repository,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		userHandler:     NewUserHandler(serviceManager.User(), logger),
		exerciseHandler: NewExerciseHandler(serviceManager.Exercise(), logger),
		programHandler:  NewProgramHandler(serviceManager.Program(), logger),
		trainerHandler:  NewTrainerHandler(serviceManager.Trainer(), logger),
		reportHandler:   NewReportHandler(serviceManager.Report(), logger),
		tokenService:    serviceManager.Token(),
		repo:            repo,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", hm.HealthCheck)

	// Public auth routes
	router.POST("/register", hm.userHandler.Register)
	router.POST("/login", hm.userHandler.Login)

	// Everything below requires a valid token for an existing account
	authenticated := router.Group("")
	authenticated.Use(AuthMiddleware(hm.tokenService, hm.repo))
	{
		// Catalogue reads - all authenticated users
		authenticated.GET("/exercise", hm.exerciseHandler.GetAllExercises)
		authenticated.GET("/exercise/:pk", hm.exerciseHandler.GetExercise)
		authenticated.GET("/program", hm.programHandler.GetAllPrograms)
		authenticated.GET("/program/:pk", hm.programHandler.GetProgram)

		// Personal program list - all authenticated users
		user := authenticated.Group("/user")
		{
			user.POST("/add/program/:pk", hm.userHandler.AddProgram)
			user.GET("/program", hm.userHandler.GetAllPrograms)
			user.GET("/program/:pk", hm.userHandler.GetProgram)
			user.DELETE("/delete/program/:pk", hm.userHandler.DeleteProgram)
		}

		// Catalogue writes - trainers only
		trainers := authenticated.Group("/trainers")
		trainers.Use(RequireRoleMiddleware(models.RoleTrainer))
		{
			trainers.POST("/exercise", hm.exerciseHandler.CreateExercise)
			trainers.POST("/program", hm.programHandler.CreateProgram)
		}

		// Catalogue deletes, role transitions and reports - admins only
		admin := authenticated.Group("/admin")
		admin.Use(RequireRoleMiddleware(models.RoleAdmin))
		{
			admin.DELETE("/delete/exercise/:pk", hm.exerciseHandler.DeleteExercise)
			admin.DELETE("/delete/program/:pk", hm.programHandler.DeleteProgram)
			admin.PUT("/set/trainer/:user_pk", hm.trainerHandler.SetTrainer)
			admin.PUT("/remove/trainer/:trainer_pk", hm.trainerHandler.RemoveTrainer)
			admin.GET("/export/exercise", hm.reportHandler.ExportExercises)
		}
	}
}

// HealthCheck endpoint
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	if err := hm.repo.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "fitness-service",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "fitness-service",
	})
}
