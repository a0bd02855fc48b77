package services

import (
	"context"
	"strings"

	"viestay/constants"
	"viestay/dto"
	apperrors "viestay/errors"
	"viestay/models"
	"viestay/services/logger"
	"viestay/validator"

	"gorm.io/gorm"
)

// ReportStore lưu phản ánh
type ReportStore interface {
	Create(ctx context.Context, report *models.Report) error
}

// GormReportStore implement ReportStore trên gorm
type GormReportStore struct {
	db *gorm.DB
}

func NewGormReportStore(db *gorm.DB) *GormReportStore {
	return &GormReportStore{db: db}
}

func (s *GormReportStore) Create(ctx context.Context, report *models.Report) error {
	return s.db.WithContext(ctx).Create(report).Error
}

// ReportService kiểm tra và lưu phản ánh nhận từ API
type ReportService struct {
	store  ReportStore
	logger logger.Logger
}

type ReportServiceOptions struct {
	Store  ReportStore
	Logger logger.Logger
}

func NewReportService(opts ReportServiceOptions) *ReportService {
	return &ReportService{
		store:  opts.Store,
		logger: opts.Logger,
	}
}

// Create validate payload rồi lưu với trạng thái pending
func (s *ReportService) Create(ctx context.Context, req dto.ReportRequest) (*models.Report, error) {
	req.ReportType = strings.TrimSpace(req.ReportType)
	req.Message = strings.TrimSpace(req.Message)
	req.Fullname = strings.TrimSpace(req.Fullname)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	req.PostID = strings.TrimSpace(req.PostID)

	if err := validator.ValidateReport(&req); err != nil {
		return nil, err
	}

	report := &models.Report{
		ReportType: req.ReportType,
		Message:    req.Message,
		Fullname:   req.Fullname,
		Phone:      validator.NormalizePhone(req.Phone),
		Email:      req.Email,
		PostID:     req.PostID,
		Status:     constants.ReportStatusPending,
	}

	if err := s.store.Create(ctx, report); err != nil {
		s.logger.Error("Lỗi khi lưu phản ánh cho tin %s: %v", req.PostID, err)
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể lưu phản ánh", err)
	}

	s.logger.Info("Đã nhận phản ánh #%d (%s) cho tin %s", report.ID, report.ReportType, report.PostID)
	return report, nil
}
