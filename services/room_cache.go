package services

import (
	"context"
	"errors"
	"time"

	"viestay/models"
)

const roomSnapshotPrefix = "rooms:snapshot:"

// RoomCache giữ bản ghi phòng đã biết (từ trang tìm kiếm hoặc lần tải trước)
// để trang chi tiết hiển thị ngay mà không cần tải lại
type RoomCache struct {
	kv  KVStore
	ttl time.Duration
}

func NewRoomCache(kv KVStore, ttl time.Duration) *RoomCache {
	return &RoomCache{kv: kv, ttl: ttl}
}

func roomSnapshotKey(id string) string {
	return roomSnapshotPrefix + id
}

// Get trả về (nil, nil) khi chưa có snapshot
func (c *RoomCache) Get(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	err := GetJSON(ctx, c.kv, roomSnapshotKey(id), &room)
	if errors.Is(err, ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *RoomCache) Put(ctx context.Context, room *models.Room) error {
	if room == nil || room.ID == "" {
		return nil
	}
	return SetJSON(ctx, c.kv, roomSnapshotKey(room.ID), room, c.ttl)
}

func (c *RoomCache) Delete(ctx context.Context, id string) error {
	return c.kv.Del(ctx, roomSnapshotKey(id))
}
