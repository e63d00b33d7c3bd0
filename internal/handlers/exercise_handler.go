package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AntonMilev36/fitness-service/internal/services"
	"github.com/AntonMilev36/fitness-service/internal/utils"
)

type ExerciseHandler struct {
	BaseHandler
	service services.ExerciseService
}

func NewExerciseHandler(service services.ExerciseService, logger utils.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateExercise creates a new exercise in the shared catalogue
// @Summary Create an exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Success 201 {object} services.ExerciseResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Name already taken"
// @Router /trainers/exercise [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req services.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating exercise", "name", req.Name, "user_pk", user.PK)

	exercise, err := h.service.Create(c.Request.Context(), &req, user.Role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"exercise": exercise})
}

// GetAllExercises lists the catalogue, shaped for the caller's role
// @Summary List exercises
// @Tags exercises
// @Produce json
// @Failure 404 {object} ErrorResponse "Catalogue is empty"
// @Router /exercise [get]
func (h *ExerciseHandler) GetAllExercises(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	exercises, err := h.service.GetAll(c.Request.Context(), user.Role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}

// GetExercise returns one exercise, shaped for the caller's role
// @Summary Get an exercise
// @Tags exercises
// @Produce json
// @Failure 404 {object} ErrorResponse "No exercise with this pk"
// @Router /exercise/{pk} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	pk := h.parseIDParam(c, "pk")
	if pk == 0 {
		return
	}

	exercise, err := h.service.Get(c.Request.Context(), pk, user.Role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercise": exercise})
}

// DeleteExercise removes an exercise from the catalogue
// @Summary Delete an exercise
// @Tags exercises
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "No exercise with this pk"
// @Router /admin/delete/exercise/{pk} [delete]
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	pk := h.parseIDParam(c, "pk")
	if pk == 0 {
		return
	}

	h.LogRequest(c, "Deleting exercise", "pk", pk)

	if err := h.service.Delete(c.Request.Context(), pk); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Exercise deleted successfully"})
}
