package controllers

import (
	"context"
	"net/http"

	"viestay/dto"
	apperrors "viestay/errors"
	"viestay/models"
	"viestay/response"
	"viestay/services/logger"

	"github.com/gin-gonic/gin"
)

// ReportCreator tạo phản ánh từ payload API
type ReportCreator interface {
	Create(ctx context.Context, req dto.ReportRequest) (*models.Report, error)
}

type ReportController struct {
	reports ReportCreator
	logger  logger.Logger
}

func NewReportController(reports ReportCreator, log logger.Logger) *ReportController {
	return &ReportController{reports: reports, logger: log}
}

// CreateReport POST /api/reports
func (rc *ReportController) CreateReport(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	report, err := rc.reports.Create(c.Request.Context(), req)
	if err != nil {
		appErr := apperrors.GetAppError(err)
		if appErr == nil {
			rc.logger.Error("Lỗi không xác định khi tạo phản ánh: %v", err)
			response.ServerError(c)
			return
		}
		if appErr.Code == apperrors.ErrCodeDBError {
			response.Error(c, http.StatusInternalServerError, appErr.Message)
			return
		}
		response.ValidationError(c, appErr.Message)
		return
	}

	response.Success(c, "Gửi phản ánh thành công", dto.ReportResponse{
		ID:     report.ID,
		PostID: report.PostID,
		Status: report.Status,
	})
}
