package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config chứa toàn bộ cấu hình của service trang chi tiết phòng
type Config struct {
	Env       string
	Port      string
	LogLevel  string
	LogFormat string

	RoomAPIBaseURL string
	ReportAPIURL   string
	HTTPTimeout    time.Duration

	RedisAddr     string
	RedisUser     string
	RedisPassword string
	RoomCacheTTL  time.Duration

	NewestPostsLimit int
	NewestPostsCron  string
	NewestPostsTTL   time.Duration

	RentalModalDelay time.Duration

	Database DatabaseConfig
}

// DatabaseConfig là thông tin kết nối Postgres cho bảng reports
type DatabaseConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8083")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ROOM_API_BASE_URL", "http://localhost:8080/api")
	v.SetDefault("REPORT_API_URL", "http://localhost:8080/api/reports")
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("ROOM_CACHE_TTL", "30m")
	v.SetDefault("NEWEST_POSTS_LIMIT", 5)
	v.SetDefault("NEWEST_POSTS_CRON", "*/5 * * * *")
	v.SetDefault("NEWEST_POSTS_TTL", "10m")
	v.SetDefault("RENTAL_MODAL_DELAY", "500ms")
	v.SetDefault("DB_SSLMODE", "require")
}

// LoadEnv nạp biến môi trường từ file .env nếu có
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}
}

// Load đọc cấu hình từ biến môi trường (sau khi đã nạp .env)
func Load() (*Config, error) {
	LoadEnv()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// FromViper dựng Config từ một viper instance đã được cấu hình
func FromViper(v *viper.Viper) (*Config, error) {
	env := strings.ToLower(v.GetString("ENV"))

	db, err := databaseConfigByEnv(v, env)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:              env,
		Port:             v.GetString("PORT"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		RoomAPIBaseURL:   strings.TrimRight(v.GetString("ROOM_API_BASE_URL"), "/"),
		ReportAPIURL:     v.GetString("REPORT_API_URL"),
		HTTPTimeout:      v.GetDuration("HTTP_TIMEOUT"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		RedisUser:        v.GetString("REDIS_USER"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RoomCacheTTL:     v.GetDuration("ROOM_CACHE_TTL"),
		NewestPostsLimit: v.GetInt("NEWEST_POSTS_LIMIT"),
		NewestPostsCron:  v.GetString("NEWEST_POSTS_CRON"),
		NewestPostsTTL:   v.GetDuration("NEWEST_POSTS_TTL"),
		RentalModalDelay: v.GetDuration("RENTAL_MODAL_DELAY"),
		Database:         db,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cấu hình không hợp lệ: %w", err)
	}
	return cfg, nil
}

// Validate kiểm tra các giá trị bắt buộc
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.RoomAPIBaseURL == "" {
		return fmt.Errorf("ROOM_API_BASE_URL is required")
	}
	if c.ReportAPIURL == "" {
		return fmt.Errorf("REPORT_API_URL is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.NewestPostsLimit <= 0 {
		return fmt.Errorf("NEWEST_POSTS_LIMIT must be positive")
	}
	if c.RentalModalDelay < 0 {
		return fmt.Errorf("RENTAL_MODAL_DELAY must not be negative")
	}
	return nil
}
