package builders

import (
	"time"

	"viestay/dto"
	"viestay/models"
	"viestay/services"
)

// RoomDetailBuilder dựng dữ liệu hiển thị của trang chi tiết phòng theo từng bước
type RoomDetailBuilder struct {
	room   *models.Room
	now    time.Time
	detail *dto.RoomDetail
}

// NewRoomDetailBuilder tạo instance mới của RoomDetailBuilder
func NewRoomDetailBuilder(room *models.Room) *RoomDetailBuilder {
	return &RoomDetailBuilder{
		room:   room,
		now:    time.Now(),
		detail: &dto.RoomDetail{Room: room},
	}
}

// WithClock đặt thời điểm hiện tại dùng khi phòng thiếu ngày đăng
func (b *RoomDetailBuilder) WithClock(now time.Time) *RoomDetailBuilder {
	b.now = now
	return b
}

// WithSummary thêm tiêu đề, giá, loại phòng, địa chỉ và mô tả
func (b *RoomDetailBuilder) WithSummary() *RoomDetailBuilder {
	r := b.room
	b.detail.Title = r.Name
	if b.detail.Title == "" {
		b.detail.Title = services.FormatRoomType(r.Type)
	}
	if r.Price > 0 {
		b.detail.Price = services.FormatCurrencyVND(r.Price) + " / tháng"
	}
	b.detail.RoomType = services.FormatRoomType(r.Type)
	b.detail.Address = services.FormatAddress(r)
	b.detail.Description = r.Description
	if b.detail.Description == "" {
		b.detail.Description = services.DescriptionPending
	}
	b.detail.Owner = r.Owner
	return b
}

// WithImages thêm danh sách ảnh (ảnh mặc định nếu trống)
func (b *RoomDetailBuilder) WithImages() *RoomDetailBuilder {
	b.detail.Images = services.RoomImages(b.room)
	return b
}

// WithFeatures thêm bảng đặc điểm tin đăng
func (b *RoomDetailBuilder) WithFeatures() *RoomDetailBuilder {
	r := b.room
	rows := []dto.FeatureRow{
		{Label: "Mã tin", Value: "#" + services.ListingCode(r)},
		{Label: "Khu vực", Value: services.FormatAddress(r)},
		{Label: "Loại tin rao", Value: services.ListingKind},
		{Label: "Đối tượng", Value: services.FormatCapacity(r.Capacity)},
		{Label: "Diện tích", Value: services.FormatSize(r.Size)},
		{Label: "Ngày đăng", Value: services.FormatPostedDate(r.CreatedAt, b.now)},
		{Label: "Trạng thái", Status: &dto.AvailabilityBadge{
			Available: r.IsAvailable,
			Label:     services.AvailabilityLabel(r.IsAvailable),
		}},
	}
	for i := range rows {
		rows[i].Shaded = i%2 == 1
	}
	b.detail.Features = rows
	return b
}

// WithAmenities thêm danh sách tiện nghi đã dịch
func (b *RoomDetailBuilder) WithAmenities() *RoomDetailBuilder {
	amenities := make([]string, 0, len(b.room.Amenities))
	for _, a := range b.room.Amenities {
		amenities = append(amenities, services.FormatAmenity(a))
	}
	b.detail.Amenities = amenities
	return b
}

// WithUtilityRates thêm bảng chi phí dịch vụ; bỏ qua mục không có đơn giá,
// màu nền xen kẽ tính theo vị trí của mục trong dữ liệu gốc
func (b *RoomDetailBuilder) WithUtilityRates() *RoomDetailBuilder {
	var rows []dto.UtilityRateRow
	for i, entry := range b.room.UtilityRates {
		if entry.Value == nil || entry.Value.Rate == 0 {
			continue
		}
		rows = append(rows, dto.UtilityRateRow{
			Label:  services.FormatUtilityLabel(entry.Key),
			Value:  services.FormatUtilityRate(*entry.Value),
			Shaded: i%2 == 1,
		})
	}
	b.detail.UtilityRates = rows
	b.detail.HasUtilityRates = len(b.room.UtilityRates) > 0
	return b
}

// Build tạo RoomDetail hoàn chỉnh
func (b *RoomDetailBuilder) Build() *dto.RoomDetail {
	return b.detail
}

// BuildRoomDetail chạy đủ các bước
func BuildRoomDetail(room *models.Room, now time.Time) *dto.RoomDetail {
	return NewRoomDetailBuilder(room).
		WithClock(now).
		WithSummary().
		WithImages().
		WithFeatures().
		WithAmenities().
		WithUtilityRates().
		Build()
}

// BuildNewestPosts chuyển danh sách phòng thành các mục của widget tin mới
func BuildNewestPosts(rooms []models.Room) []dto.NewestPost {
	posts := make([]dto.NewestPost, 0, len(rooms))
	for i := range rooms {
		r := &rooms[i]
		if r.ID == "" {
			continue
		}
		title := r.Name
		if title == "" {
			title = services.FormatRoomType(r.Type)
		}
		post := dto.NewestPost{
			ID:      r.ID,
			Title:   title,
			Address: services.FormatAddress(r),
			Image:   services.RoomImages(r)[0],
		}
		if r.Price > 0 {
			post.Price = services.FormatCurrencyVND(r.Price) + "/tháng"
		}
		posts = append(posts, post)
	}
	return posts
}
