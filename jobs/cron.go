package jobs

import (
	"context"
	"time"

	"viestay/models"
	"viestay/services/logger"

	"github.com/robfig/cron/v3"
)

const refreshTimeout = 30 * time.Second

// NewestPostsRefresher tải lại danh sách tin mới vào cache
type NewestPostsRefresher interface {
	Refresh(ctx context.Context) ([]models.Room, error)
}

// InitCronJobs đăng ký job làm mới widget tin mới và khởi động cron
func InitCronJobs(c *cron.Cron, schedule string, refresher NewestPostsRefresher, log logger.Logger) error {
	_, err := c.AddFunc(schedule, func() {
		RefreshNewestPosts(refresher, log)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}

// RefreshNewestPosts chạy một lần làm mới, lỗi chỉ được log
func RefreshNewestPosts(refresher NewestPostsRefresher, log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	rooms, err := refresher.Refresh(ctx)
	if err != nil {
		log.Error("Lỗi khi làm mới tin mới đăng: %v", err)
		return
	}
	log.Debug("Đã làm mới %d tin mới đăng lúc %v", len(rooms), time.Now())
}
