package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"viestay/dto"
	apperrors "viestay/errors"
	"viestay/services/logger"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func newTestReportClient(url string) *ReportClient {
	return NewReportClient(ReportClientOptions{
		URL:     url,
		Timeout: 2 * time.Second,
		Logger:  logger.NewNop(),
	})
}

func sampleReport() dto.ReportRequest {
	return dto.ReportRequest{
		ReportType: "scam",
		Message:    "Yêu cầu đặt cọc trước khi xem phòng",
		Fullname:   "Nguyễn Văn A",
		Phone:      "0901234567",
		Email:      "a@example.com",
		PostID:     "665f1c2e9b1d4a0012345678",
	}
}

func TestReportClient_Submit_Success(t *testing.T) {
	var received map[string]string
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":1,"message":"Gửi phản ánh thành công"}`))
	}))
	defer srv.Close()

	err := newTestReportClient(srv.URL).Submit(context.Background(), sampleReport())
	require.NoError(t, err)
	require.Equal(t, "application/json", contentType)
	require.Equal(t, map[string]string{
		"reportType": "scam",
		"message":    "Yêu cầu đặt cọc trước khi xem phòng",
		"fullname":   "Nguyễn Văn A",
		"phone":      "0901234567",
		"email":      "a@example.com",
		"postId":     "665f1c2e9b1d4a0012345678",
	}, received)
}

func TestReportClient_Submit_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":0,"message":"Nội dung phản ánh không được để trống"}`))
	}))
	defer srv.Close()

	err := newTestReportClient(srv.URL).Submit(context.Background(), sampleReport())
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, apperrors.ErrCodeReportRejected, appErr.Code)
	require.Equal(t, "Nội dung phản ánh không được để trống", appErr.Message)
}

func TestReportClient_Submit_RejectedWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := newTestReportClient(srv.URL).Submit(context.Background(), sampleReport())
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeReportRejected))
	require.Equal(t, MsgReportRejected, apperrors.GetAppError(err).Message)
}

func TestReportClient_Submit_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html><body>502 Bad Gateway</body></html>`))
	}))
	defer srv.Close()

	err := newTestReportClient(srv.URL).Submit(context.Background(), sampleReport())
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeReportTransport))
	require.Equal(t, MsgReportTransport, apperrors.GetAppError(err).Message)
}

func TestReportClient_Submit_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := newTestReportClient(url).Submit(context.Background(), sampleReport())
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeReportTransport))
}
