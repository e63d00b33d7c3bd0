package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AntonMilev36/fitness-service/internal/services"
	"github.com/AntonMilev36/fitness-service/internal/utils"
)

type ReportHandler struct {
	BaseHandler
	service services.ReportService
}

func NewReportHandler(service services.ReportService, logger utils.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ExportExercises streams the exercise catalogue as an xlsx workbook
// @Summary Export exercises as xlsx
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Failure 404 {object} ErrorResponse "Catalogue is empty"
// @Router /admin/export/exercise [get]
func (h *ReportHandler) ExportExercises(c *gin.Context) {
	h.LogRequest(c, "Exporting exercise report")

	report, err := h.service.ExportExercises(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("exercises_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", report)
}
