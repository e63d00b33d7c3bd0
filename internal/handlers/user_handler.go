package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AntonMilev36/fitness-service/internal/services"
	"github.com/AntonMilev36/fitness-service/internal/utils"
)

type UserHandler struct {
	BaseHandler
	service services.UserService
}

func NewUserHandler(service services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ===== AUTH ENDPOINTS =====

// Register creates a new account with role `user` and returns a token
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} services.TokenResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Email already taken"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Registering user", "email", req.Email)

	token, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, token)
}

// Login exchanges credentials for a token
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} services.TokenResponse
// @Failure 400 {object} ErrorResponse "Invalid email or password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Logging in user", "email", req.Email)

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// ===== SAVED PROGRAM ENDPOINTS =====

// AddProgram saves a program to the caller's personal list
// @Summary Add a program to the caller's list
// @Tags user-programs
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Program missing or already saved"
// @Router /user/add/program/{pk} [post]
func (h *UserHandler) AddProgram(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	pk := h.parseIDParam(c, "pk")
	if pk == 0 {
		return
	}

	h.LogRequest(c, "Adding program to user list", "user_pk", user.PK, "program_pk", pk)

	if err := h.service.AddProgram(c.Request.Context(), user, pk); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Program is successfully added"})
}

// GetAllPrograms lists the caller's saved programs
// @Summary List the caller's saved programs
// @Tags user-programs
// @Produce json
// @Failure 404 {object} ErrorResponse "No saved programs yet"
// @Router /user/program [get]
func (h *UserHandler) GetAllPrograms(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	programs, err := h.service.GetAllUserPrograms(c.Request.Context(), user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

// GetProgram returns one saved program from the caller's list
// @Summary Get one of the caller's saved programs
// @Tags user-programs
// @Produce json
// @Failure 404 {object} ErrorResponse "Not in the caller's list"
// @Router /user/program/{pk} [get]
func (h *UserHandler) GetProgram(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	pk := h.parseIDParam(c, "pk")
	if pk == 0 {
		return
	}

	program, err := h.service.GetSpecificProgram(c.Request.Context(), user, pk)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"program": program})
}

// DeleteProgram removes a program from the caller's list. The program
// itself is untouched.
// @Summary Remove a program from the caller's list
// @Tags user-programs
// @Produce json
// @Failure 400 {object} ErrorResponse "Not in the caller's list"
// @Router /user/delete/program/{pk} [delete]
func (h *UserHandler) DeleteProgram(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	pk := h.parseIDParam(c, "pk")
	if pk == 0 {
		return
	}

	h.LogRequest(c, "Removing program from user list", "user_pk", user.PK, "program_pk", pk)

	if err := h.service.DeleteProgram(c.Request.Context(), user, pk); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: fmt.Sprintf("Program with pk=%d is deleted successfully", pk),
	})
}
