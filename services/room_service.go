package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "viestay/errors"
	"viestay/models"
	"viestay/services/logger"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	MsgRoomNotFound  = "Không tìm thấy thông tin phòng"
	MsgRoomLoadError = "Lỗi khi tải thông tin phòng"
)

// RoomFetcher lấy bản ghi phòng theo id
type RoomFetcher interface {
	GetRoom(ctx context.Context, id string) (*models.Room, error)
}

// RoomService gọi REST backend để lấy phòng và danh sách tin mới
type RoomService struct {
	client *resty.Client
	logger logger.Logger
}

type RoomServiceOptions struct {
	BaseURL string
	Timeout time.Duration
	Logger  logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	return &RoomService{
		client: client,
		logger: opts.Logger,
	}
}

// GetRoom tải phòng theo id, không retry
func (s *RoomService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/rooms/{id}")
	if err != nil {
		s.logger.Error("Lỗi fetch room detail %s: %v", id, err)
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomFetch, MsgRoomLoadError, err)
	}

	if resp.IsError() {
		s.logger.Error("Backend trả về status %d khi lấy phòng %s", resp.StatusCode(), id)
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomFetch,
			upstreamMessage(resp.Body(), fmt.Sprintf("%s (HTTP %d)", MsgRoomLoadError, resp.StatusCode())),
			fmt.Errorf("unexpected status %d", resp.StatusCode()))
	}

	room, shape, err := NormalizeRoomEnvelope(resp.Body())
	if err != nil {
		s.logger.Error("Không nhận diện được response phòng %s: %v", id, err)
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, MsgRoomNotFound, err)
	}

	s.logger.Debug("Room %s loaded from envelope %s", id, shape)
	return room, nil
}

// EnvelopeShape là tên dạng response đã khớp
type EnvelopeShape string

const (
	ShapeSuccessDataRoom EnvelopeShape = "status+data.room"
	ShapeDataRoom        EnvelopeShape = "data.room"
	ShapeRoom            EnvelopeShape = "room"
	ShapeBareRecord      EnvelopeShape = "bare"
)

// NormalizeRoomEnvelope nhận diện các dạng response của backend theo thứ tự:
// {status:"success", data:{room}}, {data:{room}}, {room}, bản ghi có _id
func NormalizeRoomEnvelope(body []byte) (*models.Room, EnvelopeShape, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrNoEnvelope, err)
	}

	if data, ok := top["data"]; ok && isJSONObject(data) {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(data, &inner); err == nil {
			if raw, ok := inner["room"]; ok && isJSONObject(raw) {
				room, err := decodeRoom(raw)
				if err != nil {
					return nil, "", err
				}
				if statusOf(top) == "success" {
					return room, ShapeSuccessDataRoom, nil
				}
				return room, ShapeDataRoom, nil
			}
		}
	}

	if raw, ok := top["room"]; ok && isJSONObject(raw) {
		room, err := decodeRoom(raw)
		if err != nil {
			return nil, "", err
		}
		return room, ShapeRoom, nil
	}

	if raw, ok := top["_id"]; ok {
		var id string
		if err := json.Unmarshal(raw, &id); err == nil && id != "" {
			room, err := decodeRoom(body)
			if err != nil {
				return nil, "", err
			}
			return room, ShapeBareRecord, nil
		}
	}

	return nil, "", apperrors.ErrNoEnvelope
}

func decodeRoom(raw []byte) (*models.Room, error) {
	var room models.Room
	if err := json.Unmarshal(raw, &room); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidFormat, err)
	}
	return &room, nil
}

func statusOf(top map[string]json.RawMessage) string {
	var status string
	if raw, ok := top["status"]; ok {
		_ = json.Unmarshal(raw, &status)
	}
	return status
}

func isJSONObject(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// upstreamMessage lấy trường message của body lỗi nếu có
func upstreamMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Message) != "" {
		return payload.Message
	}
	return fallback
}
