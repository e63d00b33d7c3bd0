package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AntonMilev36/fitness-service/internal/services"
	"github.com/AntonMilev36/fitness-service/internal/utils"
)

type ProgramHandler struct {
	BaseHandler
	service services.ProgramService
}

func NewProgramHandler(service services.ProgramService, logger utils.Logger) *ProgramHandler {
	return &ProgramHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateProgram creates a program referencing existing exercises. If any
// referenced exercise is missing, nothing is written.
// @Summary Create a program
// @Tags programs
// @Accept json
// @Produce json
// @Success 201 {object} services.ProgramResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Referenced exercise missing"
// @Router /trainers/program [post]
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req services.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating program", "title", req.Title, "user_pk", user.PK)

	program, err := h.service.Create(c.Request.Context(), &req, user.Role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"program": program})
}

// GetAllPrograms lists every program with its exercises
// @Summary List programs
// @Tags programs
// @Produce json
// @Failure 404 {object} ErrorResponse "No programs yet"
// @Router /program [get]
func (h *ProgramHandler) GetAllPrograms(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	programs, err := h.service.GetAll(c.Request.Context(), user.Role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

// GetProgram returns one program with its exercises
// @Summary Get a program
// @Tags programs
// @Produce json
// @Failure 404 {object} ErrorResponse "No program with this pk"
// @Router /program/{pk} [get]
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	pk := h.parseIDParam(c, "pk")
	if pk == 0 {
		return
	}

	program, err := h.service.Get(c.Request.Context(), pk, user.Role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"program": program})
}

// DeleteProgram removes a program and every user's saved reference to it
// @Summary Delete a program
// @Tags programs
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "No program with this pk"
// @Router /admin/delete/program/{pk} [delete]
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	pk := h.parseIDParam(c, "pk")
	if pk == 0 {
		return
	}

	h.LogRequest(c, "Deleting program", "pk", pk)

	if err := h.service.Delete(c.Request.Context(), pk); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Program is deleted successfully"})
}
