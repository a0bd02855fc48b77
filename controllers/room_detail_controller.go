package controllers

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"viestay/builders"
	"viestay/dto"
	apperrors "viestay/errors"
	"viestay/models"
	"viestay/services"
	"viestay/services/logger"

	"github.com/gin-gonic/gin"
)

const (
	pageTemplate    = "room_detail.tmpl"
	contentTemplate = "room_content"
	reportTemplate  = "report_modal"
)

// RoomSnapshots là nơi đọc/ghi bản ghi phòng đã biết
type RoomSnapshots interface {
	Get(ctx context.Context, id string) (*models.Room, error)
	Put(ctx context.Context, room *models.Room) error
}

// NewestPostsProvider cung cấp danh sách tin mới cho cột phải
type NewestPostsProvider interface {
	Get(ctx context.Context) []models.Room
}

type RoomDetailController struct {
	rooms       services.RoomFetcher
	snapshots   RoomSnapshots
	newest      NewestPostsProvider
	reports     services.ReportSubmitter
	rentalDelay time.Duration
	logger      logger.Logger
	now         func() time.Time
}

type RoomDetailControllerOptions struct {
	Rooms       services.RoomFetcher
	Snapshots   RoomSnapshots
	Newest      NewestPostsProvider
	Reports     services.ReportSubmitter
	RentalDelay time.Duration
	Logger      logger.Logger
	Now         func() time.Time
}

func NewRoomDetailController(opts RoomDetailControllerOptions) *RoomDetailController {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &RoomDetailController{
		rooms:       opts.Rooms,
		snapshots:   opts.Snapshots,
		newest:      opts.Newest,
		reports:     opts.Reports,
		rentalDelay: opts.RentalDelay,
		logger:      opts.Logger,
		now:         now,
	}
}

func (rc *RoomDetailController) newPage(c *gin.Context, id string) *dto.RoomDetailPage {
	page := &dto.RoomDetailPage{
		RoomID: id,
		State:  dto.RoomPageLoading,
		Report: dto.ReportModal{
			RoomID:  id,
			Form:    dto.NewReportForm(),
			Options: dto.ReportTypeOptions,
		},
	}
	if c.Query("action") == "rent" {
		page.Rental.AutoOpen = true
		page.Rental.DelayMs = rc.rentalDelay.Milliseconds()
	}
	return page
}

func (rc *RoomDetailController) setRoom(ctx context.Context, page *dto.RoomDetailPage, room *models.Room) {
	if room == nil {
		page.State = dto.RoomPageNotFound
		return
	}
	detail := builders.BuildRoomDetail(room, rc.now())
	page.State = dto.RoomPageReady
	page.Detail = detail
	page.Rental.Title = detail.Title
	page.Rental.Price = detail.Price
	page.Rental.Address = detail.Address
	if rc.newest != nil {
		page.NewestPosts = builders.BuildNewestPosts(rc.newest.Get(ctx))
	}
}

func (rc *RoomDetailController) setError(page *dto.RoomDetailPage, err error) {
	page.State = dto.RoomPageError
	page.Error = services.MsgRoomLoadError
	if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Message != "" {
		page.Error = appErr.Message
	}
}

// load tải phòng qua backend rồi ghi snapshot
func (rc *RoomDetailController) load(ctx context.Context, page *dto.RoomDetailPage) {
	room, err := rc.rooms.GetRoom(ctx, page.RoomID)
	if err != nil {
		rc.logger.Error("Lỗi fetch room detail %s: %v", page.RoomID, err)
		rc.setError(page, err)
		return
	}
	if room != nil {
		if err := rc.snapshots.Put(ctx, room); err != nil {
			rc.logger.Error("Lỗi khi lưu snapshot phòng %s: %v", page.RoomID, err)
		}
	}
	rc.setRoom(ctx, page, room)
}

// ShowRoom GET /rooms/:id
func (rc *RoomDetailController) ShowRoom(c *gin.Context) {
	ctx := c.Request.Context()
	id := strings.TrimSpace(c.Param("id"))
	page := rc.newPage(c, id)

	if id == "" {
		page.State = dto.RoomPageNotFound
		c.HTML(http.StatusOK, pageTemplate, page)
		return
	}

	room, err := rc.snapshots.Get(ctx, id)
	if err != nil {
		rc.logger.Error("Lỗi khi đọc snapshot phòng %s: %v", id, err)
	}

	switch {
	case room != nil:
		rc.setRoom(ctx, page, room)
	case isHTMXRequest(c):
		rc.load(ctx, page)
		c.HTML(http.StatusOK, contentTemplate, page)
		return
	default:
		page.ContentURL = contentURL(id, c.Query("action"))
	}

	c.HTML(http.StatusOK, pageTemplate, page)
}

// RoomContent GET /rooms/:id/content, được trang ở trạng thái loading gọi tới
func (rc *RoomDetailController) RoomContent(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	page := rc.newPage(c, id)

	if id == "" {
		page.State = dto.RoomPageNotFound
	} else {
		rc.load(c.Request.Context(), page)
	}

	c.HTML(http.StatusOK, contentTemplate, page)
}

// SubmitReport POST /rooms/:id/report từ modal phản ánh
func (rc *RoomDetailController) SubmitReport(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	modal := dto.ReportModal{
		Open:    true,
		RoomID:  id,
		Form:    dto.NewReportForm(),
		Options: dto.ReportTypeOptions,
	}

	var form dto.ReportForm
	if err := c.ShouldBind(&form); err != nil {
		rc.logger.Error("Error binding report form for %s: %v", id, err)
		modal.Toast = &dto.Toast{Kind: dto.ToastError, Message: services.MsgReportTransport}
		c.HTML(http.StatusOK, reportTemplate, modal)
		return
	}
	if form.ReportType == "" {
		form.ReportType = dto.DefaultReportType
	}

	err := rc.reports.Submit(c.Request.Context(), form.ToRequest(id))
	if err != nil {
		modal.Form = form
		modal.Toast = &dto.Toast{Kind: dto.ToastError, Message: reportErrorMessage(err)}
		c.HTML(http.StatusOK, reportTemplate, modal)
		return
	}

	modal.Open = false
	modal.Toast = &dto.Toast{Kind: dto.ToastSuccess, Message: services.MsgReportSent}
	c.HTML(http.StatusOK, reportTemplate, modal)
}

func reportErrorMessage(err error) string {
	if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Code == apperrors.ErrCodeReportRejected {
		return "Lỗi: " + appErr.Message
	}
	return services.MsgReportTransport
}

func contentURL(id, action string) string {
	u := "/rooms/" + url.PathEscape(id) + "/content"
	if action != "" {
		u += "?" + url.Values{"action": {action}}.Encode()
	}
	return u
}
