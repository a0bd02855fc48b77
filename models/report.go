package models

import "time"

// Report là phản ánh tin đăng do người xem gửi
type Report struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ReportType string    `json:"reportType" gorm:"size:32;not null"`
	Message    string    `json:"message" gorm:"type:text;not null"`
	Fullname   string    `json:"fullname"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	PostID     string    `json:"postId" gorm:"index;not null"`
	Status     string    `json:"status" gorm:"size:16;default:pending"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
