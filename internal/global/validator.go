package global

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("sane_year", validateSaneYear)
}

// validateSaneYear kiểm tra năm báo cáo nằm trong khoảng chấp nhận được:
// từ 1900 đến năm hiện tại + 10.
func validateSaneYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	maxYear := int64(time.Now().Year() + 10)
	return year >= 1900 && year <= maxYear
}
