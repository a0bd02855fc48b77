package dto

// DefaultReportType là loại phản ánh được chọn sẵn trên form
const DefaultReportType = "scam"

// ReportForm là các trường của form phản ánh trên trang chi tiết
type ReportForm struct {
	ReportType string `form:"reportType"`
	Message    string `form:"message"`
	Fullname   string `form:"fullname"`
	Phone      string `form:"phone"`
	Email      string `form:"email"`
}

// NewReportForm trả về form ở trạng thái ban đầu
func NewReportForm() ReportForm {
	return ReportForm{ReportType: DefaultReportType}
}

// ReportRequest là payload JSON gửi tới API phản ánh
type ReportRequest struct {
	ReportType string `json:"reportType"`
	Message    string `json:"message"`
	Fullname   string `json:"fullname"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	PostID     string `json:"postId"`
}

// ToRequest gắn id tin đăng vào dữ liệu form
func (f ReportForm) ToRequest(postID string) ReportRequest {
	return ReportRequest{
		ReportType: f.ReportType,
		Message:    f.Message,
		Fullname:   f.Fullname,
		Phone:      f.Phone,
		Email:      f.Email,
		PostID:     postID,
	}
}

// ReportTypeOption là một lựa chọn trong danh sách loại phản ánh
type ReportTypeOption struct {
	Value string
	Label string
}

// ReportTypeOptions là danh sách loại phản ánh hiển thị trên form
var ReportTypeOptions = []ReportTypeOption{
	{Value: "scam", Label: "Tin có dấu hiệu lừa đảo"},
	{Value: "duplicate", Label: "Tin trùng lặp nội dung"},
	{Value: "wrong_info", Label: "Thông tin không đúng thực tế"},
	{Value: "unreachable", Label: "Không liên lạc được"},
	{Value: "fake_images", Label: "Hình ảnh không đúng thực tế"},
	{Value: "other", Label: "Lý do khác"},
}

// IsValidReportType kiểm tra loại phản ánh có nằm trong danh sách không
func IsValidReportType(value string) bool {
	for _, opt := range ReportTypeOptions {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// ReportResponse là dữ liệu trả về khi tạo phản ánh thành công
type ReportResponse struct {
	ID     uint   `json:"id"`
	PostID string `json:"postId"`
	Status string `json:"status"`
}
