package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"viestay/models"
	"viestay/services/logger"

	"github.com/goccy/go-json"
)

const newestPostsKey = "rooms:newest"

// NewestRoomsLister lấy danh sách phòng mới đăng
type NewestRoomsLister interface {
	ListNewest(ctx context.Context, limit int) ([]models.Room, error)
}

// ListNewest gọi GET /rooms?sort=newest&limit=N
func (s *RoomService) ListNewest(ctx context.Context, limit int) ([]models.Room, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"sort":  "newest",
			"limit": strconv.Itoa(limit),
		}).
		Get("/rooms")
	if err != nil {
		return nil, fmt.Errorf("list newest rooms: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list newest rooms: unexpected status %d", resp.StatusCode())
	}

	rooms, err := NormalizeRoomListEnvelope(resp.Body())
	if err != nil {
		return nil, err
	}
	if len(rooms) > limit {
		rooms = rooms[:limit]
	}
	return rooms, nil
}

// NormalizeRoomListEnvelope nhận diện {data:{rooms}}, {rooms} hoặc mảng trần
func NormalizeRoomListEnvelope(body []byte) ([]models.Room, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rooms []models.Room
		if err := json.Unmarshal(trimmed, &rooms); err != nil {
			return nil, fmt.Errorf("decode room list: %w", err)
		}
		return rooms, nil
	}

	var envelope struct {
		Data *struct {
			Rooms []models.Room `json:"rooms"`
		} `json:"data"`
		Rooms []models.Room `json:"rooms"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode room list: %w", err)
	}
	if envelope.Data != nil && envelope.Data.Rooms != nil {
		return envelope.Data.Rooms, nil
	}
	if envelope.Rooms != nil {
		return envelope.Rooms, nil
	}
	return nil, errors.New("decode room list: no rooms field")
}

// NewestPostsService cache danh sách tin mới cho widget bên phải
type NewestPostsService struct {
	lister NewestRoomsLister
	kv     KVStore
	ttl    time.Duration
	limit  int
	logger logger.Logger
}

type NewestPostsOptions struct {
	Lister NewestRoomsLister
	KV     KVStore
	TTL    time.Duration
	Limit  int
	Logger logger.Logger
}

func NewNewestPostsService(opts NewestPostsOptions) *NewestPostsService {
	return &NewestPostsService{
		lister: opts.Lister,
		kv:     opts.KV,
		ttl:    opts.TTL,
		limit:  opts.Limit,
		logger: opts.Logger,
	}
}

// Refresh tải lại danh sách và ghi vào cache
func (s *NewestPostsService) Refresh(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.lister.ListNewest(ctx, s.limit)
	if err != nil {
		return nil, err
	}
	if err := SetJSON(ctx, s.kv, newestPostsKey, rooms, s.ttl); err != nil {
		s.logger.Error("Lỗi khi lưu tin mới vào cache: %v", err)
	}
	return rooms, nil
}

// Get đọc từ cache, tải lại khi cache trống; lỗi chỉ được log và trả về danh sách rỗng
func (s *NewestPostsService) Get(ctx context.Context) []models.Room {
	var rooms []models.Room
	err := GetJSON(ctx, s.kv, newestPostsKey, &rooms)
	if err == nil {
		return rooms
	}
	if !errors.Is(err, ErrCacheMiss) {
		s.logger.Error("Lỗi khi đọc tin mới từ cache: %v", err)
	}

	rooms, err = s.Refresh(ctx)
	if err != nil {
		s.logger.Error("Lỗi khi tải tin mới: %v", err)
		return nil
	}
	return rooms
}
