package dto

import "viestay/models"

// RoomPageState là trạng thái hiển thị của trang chi tiết phòng
type RoomPageState string

const (
	RoomPageLoading  RoomPageState = "loading"
	RoomPageError    RoomPageState = "error"
	RoomPageNotFound RoomPageState = "not_found"
	RoomPageReady    RoomPageState = "ready"
)

// ToastKind phân loại thông báo nổi
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast là thông báo nổi góc phải trên
type Toast struct {
	Kind    ToastKind
	Message string
}

// FeatureRow là một dòng trong bảng "Đặc điểm tin đăng"
type FeatureRow struct {
	Label  string
	Value  string
	Shaded bool
	Status *AvailabilityBadge
}

// AvailabilityBadge là nhãn trạng thái còn trống / đã thuê
type AvailabilityBadge struct {
	Available bool
	Label     string
}

// UtilityRateRow là một dòng trong bảng "Chi phí dịch vụ"
type UtilityRateRow struct {
	Label  string
	Value  string
	Shaded bool
}

// NewestPost là một tin trong widget "Tin mới đăng"
type NewestPost struct {
	ID      string
	Title   string
	Price   string
	Address string
	Image   string
}

// RoomDetail là toàn bộ dữ liệu hiển thị đã được định dạng của một phòng
type RoomDetail struct {
	Room            *models.Room
	Title           string
	Price           string
	RoomType        string
	Address         string
	Description     string
	Images          []string
	Features        []FeatureRow
	Amenities       []string
	UtilityRates    []UtilityRateRow
	HasUtilityRates bool
	Owner           *models.Owner
}

// ReportModal là trạng thái của modal phản ánh
type ReportModal struct {
	Open    bool
	RoomID  string
	Form    ReportForm
	Options []ReportTypeOption
	Toast   *Toast
}

// RentalModal là trạng thái của modal yêu cầu thuê phòng
type RentalModal struct {
	AutoOpen bool
	DelayMs  int64
	Title    string
	Price    string
	Address  string
}

// RoomDetailPage là view model của trang chi tiết phòng
type RoomDetailPage struct {
	RoomID      string
	State       RoomPageState
	Error       string
	ContentURL  string
	Detail      *RoomDetail
	NewestPosts []NewestPost
	Report      ReportModal
	Rental      RentalModal
}
