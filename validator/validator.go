package validator

import (
	"viestay/dto"
	"viestay/errors"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

const phoneRegion = "VN"

var validate = validator.New()

// ValidateReport validate payload phản ánh tin đăng
func ValidateReport(req *dto.ReportRequest) error {
	if req.ReportType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phản ánh không được để trống", nil)
	}

	if !dto.IsValidReportType(req.ReportType) {
		return errors.NewAppError(errors.ErrCodeValidation, "Loại phản ánh không hợp lệ", nil)
	}

	if req.Message == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nội dung phản ánh không được để trống", nil)
	}

	if req.PostID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã tin đăng không được để trống", nil)
	}

	if req.Email != "" {
		if err := ValidateEmail(req.Email); err != nil {
			return err
		}
	}

	if req.Phone != "" {
		if err := ValidatePhone(req.Phone); err != nil {
			return err
		}
	}

	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", err)
	}
	return nil
}

// ValidatePhone kiểm tra số điện thoại Việt Nam hợp lệ
func ValidatePhone(phone string) error {
	num, err := phonenumbers.Parse(phone, phoneRegion)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	return nil
}

// NormalizePhone đưa số điện thoại về dạng E.164, giữ nguyên nếu không parse được
func NormalizePhone(phone string) string {
	if phone == "" {
		return ""
	}
	num, err := phonenumbers.Parse(phone, phoneRegion)
	if err != nil {
		return phone
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
