// Package analyticsdto - DTO cho domain Analytics (tổng hợp doanh thu, hiệu suất sản phẩm).
package analyticsdto

// MonthYearQuery query params cho các endpoint theo chu kỳ tháng.
// Month/year nhận từ query string, ví dụ: ?month=6&year=2025
type MonthYearQuery struct {
	Month int `query:"month" json:"month" validate:"required,min=1,max=12"` // Tháng báo cáo (1-12)
	Year  int `query:"year" json:"year" validate:"required,sane_year"`      // Năm báo cáo (1900..năm hiện tại+10)
}

// MonthYearUpdateQuery query params cho các endpoint tính lại theo tháng.
// Cả hai trường đều optional: bỏ trống thì tính cho tháng hiện tại.
type MonthYearUpdateQuery struct {
	Month int `query:"month" json:"month" validate:"omitempty,min=1,max=12"` // Tháng cần tính (optional)
	Year  int `query:"year" json:"year" validate:"omitempty,sane_year"`      // Năm cần tính (optional)
}

// YearQuery query params cho các endpoint theo chu kỳ năm
type YearQuery struct {
	Year int `query:"year" json:"year" validate:"required,sane_year"` // Năm báo cáo
}

// PerformanceUpdateBody body cho POST /product-analytics/update.
// Cả hai trường đều optional: bỏ trống thì tính cho tháng hiện tại.
type PerformanceUpdateBody struct {
	Month int `json:"month" validate:"omitempty,min=1,max=12"` // Tháng cần tính (optional)
	Year  int `json:"year" validate:"omitempty,sane_year"`      // Năm cần tính (optional)
}

// ComparisonQuery query params cho GET /product-analytics/compare
type ComparisonQuery struct {
	StartMonth int `query:"startMonth" json:"startMonth" validate:"required,min=1,max=12"` // Tháng chu kỳ đầu
	StartYear  int `query:"startYear" json:"startYear" validate:"required,sane_year"`       // Năm chu kỳ đầu
	EndMonth   int `query:"endMonth" json:"endMonth" validate:"required,min=1,max=12"`      // Tháng chu kỳ cuối
	EndYear    int `query:"endYear" json:"endYear" validate:"required,sane_year"`           // Năm chu kỳ cuối
}
