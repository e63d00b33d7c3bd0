package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AntonMilev36/fitness-service/internal/services"
	"github.com/AntonMilev36/fitness-service/internal/utils"
)

type TrainerHandler struct {
	BaseHandler
	service services.TrainerService
}

func NewTrainerHandler(service services.TrainerService, logger utils.Logger) *TrainerHandler {
	return &TrainerHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// SetTrainer promotes an account with role `user` to trainer
// @Summary Promote a user to trainer
// @Tags trainers
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Account is not a plain user"
// @Failure 404 {object} ErrorResponse "No user with this pk"
// @Router /admin/set/trainer/{user_pk} [put]
func (h *TrainerHandler) SetTrainer(c *gin.Context) {
	pk := h.parseIDParam(c, "user_pk")
	if pk == 0 {
		return
	}

	h.LogRequest(c, "Promoting user to trainer", "user_pk", pk)

	if err := h.service.PromoteToTrainer(c.Request.Context(), pk); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: fmt.Sprintf("User with pk=%d is set to trainer", pk),
	})
}

// RemoveTrainer demotes a trainer back to role `user`
// @Summary Demote a trainer to user
// @Tags trainers
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Account is not a trainer"
// @Failure 404 {object} ErrorResponse "No user with this pk"
// @Router /admin/remove/trainer/{trainer_pk} [put]
func (h *TrainerHandler) RemoveTrainer(c *gin.Context) {
	pk := h.parseIDParam(c, "trainer_pk")
	if pk == 0 {
		return
	}

	h.LogRequest(c, "Demoting trainer to user", "trainer_pk", pk)

	if err := h.service.DemoteToUser(c.Request.Context(), pk); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: fmt.Sprintf("Trainer with pk=%d is now set to user", pk),
	})
}
