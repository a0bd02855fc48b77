package services

import (
	"strconv"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"viestay/constants"
	"viestay/models"
)

const (
	DefaultTimezone    = "Asia/Ho_Chi_Minh"
	DefaultRoomImage   = "https://t3.ftcdn.net/jpg/02/15/15/46/360_F_215154625_hJg9QkfWH9Cu6LCTUc8TiuV6jQSI0C5X.jpg"
	AddressPending     = "Địa chỉ đang cập nhật"
	DescriptionPending = "Mô tả đang được cập nhật..."
	ListingKind        = "Cho thuê phòng trọ"
	StatusAvailable    = "Còn trống"
	StatusRented       = "Đã thuê"
)

var amenityLabels = map[string]string{
	"air_conditioning":   "Điều hòa",
	"wifi":               "Wifi miễn phí",
	"washing_machine":    "Máy giặt",
	"elevator":           "Thang máy",
	"balcony":            "Ban công",
	"fully_furnished":    "Nội thất đầy đủ",
	"pet_friendly":       "Cho phép nuôi thú cưng",
	"cooking_allowed":    "Cho phép nấu ăn",
	"utilities_included": "Bao điện nước",
	"security":           "An toàn",
	"parking":            "Chỗ để xe",
	"security_camera":    "Camera an ninh",
	"tv":                 "TV",
	"refrigerator":       "Tủ lạnh",
	"microwave":          "Lò vi sóng",
	"desk":               "Bàn làm việc",
	"wardrobe":           "Tủ quần áo",
	"window":             "Cửa sổ",
}

var roomTypeLabels = map[string]string{
	"single":    "Phòng đơn",
	"double":    "Phòng đôi",
	"shared":    "Phòng chia sẻ",
	"studio":    "Phòng studio",
	"apartment": "Căn hộ mini",
	"dormitory": "Ký túc xá",
}

var utilityLabels = map[string]string{
	"water":       "Tiền nước",
	"electricity": "Tiền điện",
	"internet":    "Internet",
}

// FormatAmenity trả về nhãn tiếng Việt, key lạ thì thay "_" bằng khoảng trắng
func FormatAmenity(amenity string) string {
	if label, ok := amenityLabels[amenity]; ok {
		return label
	}
	return strings.ReplaceAll(amenity, "_", " ")
}

// FormatRoomType trả về nhãn loại phòng, loại lạ giữ nguyên
func FormatRoomType(roomType string) string {
	if label, ok := roomTypeLabels[roomType]; ok {
		return label
	}
	return roomType
}

// FormatUtilityLabel trả về tên chi phí dịch vụ
func FormatUtilityLabel(key string) string {
	if label, ok := utilityLabels[key]; ok {
		return label
	}
	return key
}

// FormatAddress ưu tiên fullAddress, sau đó ghép phường, quận, thành phố
func FormatAddress(room *models.Room) string {
	if room == nil {
		return AddressPending
	}
	if room.FullAddress != "" {
		return room.FullAddress
	}
	if room.Accommodation != nil && room.Accommodation.Address != nil {
		addr := room.Accommodation.Address
		var parts []string
		for _, part := range []string{addr.Ward, addr.District, addr.City} {
			if part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	return AddressPending
}

// ListingCode là 6 ký tự cuối của id, "000000" khi không có id
func ListingCode(room *models.Room) string {
	if room == nil || room.ID == "" {
		return "000000"
	}
	runes := []rune(room.ID)
	if len(runes) > 6 {
		runes = runes[len(runes)-6:]
	}
	return string(runes)
}

// FormatCapacity hiển thị số người, mặc định 1
func FormatCapacity(capacity int) string {
	if capacity == 0 {
		capacity = 1
	}
	return strconv.Itoa(capacity) + " người"
}

// FormatSize hiển thị diện tích theo m²
func FormatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64) + " m²"
}

// FormatPostedDate hiển thị ngày đăng kiểu vi-VN (d/m/yyyy), thiếu ngày thì dùng now
func FormatPostedDate(createdAt *time.Time, now time.Time) string {
	t := now
	if createdAt != nil && !createdAt.IsZero() {
		t = *createdAt
	}
	return t.In(vietnamLocation()).Format("2/1/2006")
}

// AvailabilityLabel trả về nhãn trạng thái phòng
func AvailabilityLabel(available bool) string {
	if available {
		return StatusAvailable
	}
	return StatusRented
}

// FormatUtilityRate hiển thị đơn giá theo tháng (fixed) hoặc theo đơn vị
func FormatUtilityRate(rate models.UtilityRate) string {
	if rate.Type == constants.UtilityRateFixed {
		return FormatCurrencyVND(rate.Rate) + " / tháng"
	}
	return FormatCurrencyVND(rate.Rate) + " / đơn vị"
}

// RoomImages trả về danh sách ảnh, dùng ảnh mặc định khi phòng chưa có ảnh
func RoomImages(room *models.Room) []string {
	if room == nil || len(room.Images) == 0 {
		return []string{DefaultRoomImage}
	}
	return room.Images
}

var (
	vnLocation     *time.Location
	vnLocationOnce sync.Once
)

func vietnamLocation() *time.Location {
	vnLocationOnce.Do(func() {
		loc, err := time.LoadLocation(DefaultTimezone)
		if err != nil {
			loc = time.FixedZone("ICT", 7*60*60)
		}
		vnLocation = loc
	})
	return vnLocation
}
