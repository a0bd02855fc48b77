package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"viestay/dto"
	apperrors "viestay/errors"
	"viestay/models"
	"viestay/services/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeReportStore struct {
	created []*models.Report
	err     error
}

func (f *fakeReportStore) Create(_ context.Context, report *models.Report) error {
	if f.err != nil {
		return f.err
	}
	report.ID = uint(len(f.created) + 1)
	f.created = append(f.created, report)
	return nil
}

func TestReportService_Create(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(ReportServiceOptions{Store: store, Logger: logger.NewNop()})

	req := sampleReport()
	req.Message = "  Yêu cầu đặt cọc  "
	report, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, uint(1), report.ID)
	require.Equal(t, "pending", report.Status)
	require.Equal(t, "Yêu cầu đặt cọc", report.Message)
	require.Equal(t, "+84901234567", report.Phone)
	require.Len(t, store.created, 1)
}

func TestReportService_Create_Validation(t *testing.T) {
	svc := NewReportService(ReportServiceOptions{Store: &fakeReportStore{}, Logger: logger.NewNop()})

	cases := []struct {
		name   string
		mutate func(r *dto.ReportRequest)
		code   apperrors.ErrorCode
	}{
		{"missing type", func(r *dto.ReportRequest) { r.ReportType = "" }, apperrors.ErrCodeRequiredField},
		{"unknown type", func(r *dto.ReportRequest) { r.ReportType = "spam" }, apperrors.ErrCodeValidation},
		{"blank message", func(r *dto.ReportRequest) { r.Message = "   " }, apperrors.ErrCodeRequiredField},
		{"missing post", func(r *dto.ReportRequest) { r.PostID = "" }, apperrors.ErrCodeRequiredField},
		{"bad email", func(r *dto.ReportRequest) { r.Email = "not-an-email" }, apperrors.ErrCodeInvalidEmail},
		{"bad phone", func(r *dto.ReportRequest) { r.Phone = "12" }, apperrors.ErrCodeInvalidPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := sampleReport()
			tc.mutate(&req)
			_, err := svc.Create(context.Background(), req)
			require.True(t, apperrors.HasCode(err, tc.code), "got %v", err)
		})
	}
}

func TestReportService_Create_StoreError(t *testing.T) {
	svc := NewReportService(ReportServiceOptions{
		Store:  &fakeReportStore{err: errors.New("connection refused")},
		Logger: logger.NewNop(),
	})

	_, err := svc.Create(context.Background(), sampleReport())
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeDBError))
}

func TestGormReportStore_Create(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "reports"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	report := &models.Report{
		ReportType: "scam",
		Message:    "Yêu cầu đặt cọc",
		PostID:     "665f1c2e9b1d4a0012345678",
		Status:     "pending",
	}
	require.NoError(t, NewGormReportStore(db).Create(context.Background(), report))
	require.Equal(t, uint(42), report.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
