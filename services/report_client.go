package services

import (
	"context"
	"time"

	"viestay/dto"
	apperrors "viestay/errors"
	"viestay/services/logger"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	MsgReportSent      = "Phản ánh đã được gửi thành công! Chúng tôi sẽ xem xét và phản hồi sớm nhất."
	MsgReportRejected  = "Không thể gửi phản ánh"
	MsgReportTransport = "Có lỗi xảy ra khi gửi phản ánh. Vui lòng thử lại."
)

// ReportSubmitter gửi phản ánh tin đăng
type ReportSubmitter interface {
	Submit(ctx context.Context, req dto.ReportRequest) error
}

// ReportClient POST payload phản ánh tới API reports
type ReportClient struct {
	client *resty.Client
	url    string
	logger logger.Logger
}

type ReportClientOptions struct {
	URL     string
	Timeout time.Duration
	Logger  logger.Logger
}

func NewReportClient(opts ReportClientOptions) *ReportClient {
	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &ReportClient{
		client: client,
		url:    opts.URL,
		logger: opts.Logger,
	}
}

type reportAPIResponse struct {
	Message string `json:"message"`
}

// Submit trả về AppError ErrCodeReportRejected khi API trả status lỗi,
// ErrCodeReportTransport khi không gọi được API
func (c *ReportClient) Submit(ctx context.Context, req dto.ReportRequest) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(c.url)
	if err != nil {
		c.logger.Error("Error submitting report for post %s: %v", req.PostID, err)
		return apperrors.NewAppError(apperrors.ErrCodeReportTransport, MsgReportTransport, err)
	}

	if resp.IsError() {
		// body lỗi không phải JSON được xử lý như lỗi kết nối
		var result reportAPIResponse
		if err := json.Unmarshal(resp.Body(), &result); err != nil {
			c.logger.Error("Report for post %s failed with status %d and unreadable body: %v", req.PostID, resp.StatusCode(), err)
			return apperrors.NewAppError(apperrors.ErrCodeReportTransport, MsgReportTransport, err)
		}
		message := result.Message
		if message == "" {
			message = MsgReportRejected
		}
		c.logger.Info("Report for post %s rejected with status %d: %s", req.PostID, resp.StatusCode(), message)
		return apperrors.NewAppError(apperrors.ErrCodeReportRejected, message, nil)
	}

	c.logger.Info("Report for post %s submitted", req.PostID)
	return nil
}
