// Package analyticssvc chứa các service tổng hợp số liệu bán hàng:
// rollup doanh thu theo tháng/năm, hiệu suất sản phẩm, so sánh chu kỳ.
package analyticssvc

import (
	"time"

	"pos_insight/internal/common"
)

// Timezone cố định cho cắt chu kỳ (báo cáo theo chu kỳ).
const ReportTimezone = "Asia/Ho_Chi_Minh"

// reportLocation trả về *time.Location của ReportTimezone, fallback UTC nếu load thất bại
func reportLocation() *time.Location {
	loc, err := time.LoadLocation(ReportTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ValidateMonthYear kiểm tra tháng trong 1-12 và năm trong khoảng chấp nhận
// (1900 đến năm hiện tại + 10). Trả về common.ErrInvalidPeriod nếu không hợp lệ.
func ValidateMonthYear(month, year int) error {
	if month < 1 || month > 12 {
		return common.ErrInvalidPeriod
	}
	if year < 1900 || year > time.Now().Year()+10 {
		return common.ErrInvalidPeriod
	}
	return nil
}

// ValidateYear kiểm tra năm trong khoảng chấp nhận
func ValidateYear(year int) error {
	if year < 1900 || year > time.Now().Year()+10 {
		return common.ErrInvalidPeriod
	}
	return nil
}

// MonthRange trả về khoảng thời gian nửa mở [start, end) của một tháng
// theo ReportTimezone. end là 00:00 ngày đầu tháng kế tiếp.
func MonthRange(month, year int) (start, end time.Time) {
	loc := reportLocation()
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0)
	return start, end
}

// YearRange trả về khoảng thời gian nửa mở [start, end) của một năm theo ReportTimezone
func YearRange(year int) (start, end time.Time) {
	loc := reportLocation()
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(1, 0, 0)
	return start, end
}

// CurrentPeriod trả về (tháng, năm) hiện tại theo ReportTimezone
func CurrentPeriod() (month, year int) {
	now := time.Now().In(reportLocation())
	return int(now.Month()), now.Year()
}

// ResolvePeriod trả về chu kỳ được yêu cầu, mặc định là chu kỳ hiện tại
// khi caller bỏ trống tháng hoặc năm (giá trị 0).
func ResolvePeriod(month, year int) (int, int) {
	if month == 0 || year == 0 {
		return CurrentPeriod()
	}
	return month, year
}

// PreviousPeriod trả về chu kỳ tháng liền trước. Tháng 1 lùi về tháng 12 năm trước.
func PreviousPeriod(month, year int) (prevMonth, prevYear int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

// MonthName trả về tên tiếng Anh của tháng (January..December), rỗng nếu ngoài 1-12
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}
