package analyticsdto

import (
	"pos_insight/internal/api/analytics/models"
)

// TrendResult là tăng trưởng so với tháng liền trước.
// Giá trị là chuỗi phần trăm 2 chữ số thập phân (vd "50.00"),
// nil khi số liệu tháng trước bằng 0 (không chia được).
type TrendResult struct {
	RevenueGrowth *string `json:"revenueGrowth"` // % tăng trưởng doanh thu
	UnitsGrowth   *string `json:"unitsGrowth"`   // % tăng trưởng số lượng bán
}

// PerformanceView là snapshot hiệu suất kèm các trường dẫn xuất cho client
type PerformanceView struct {
	models.ProductPerformance

	MonthName        string       `json:"monthName"`        // Tên tháng tiếng Anh (January..December)
	PerformanceScore int          `json:"performanceScore"` // Điểm hiệu suất 0-100
	Trends           *TrendResult `json:"trends"`           // Tăng trưởng so với tháng trước (nil nếu thiếu dữ liệu)
}

// ComparisonChanges là phần trăm thay đổi giữa hai chu kỳ.
// nil khi số liệu chu kỳ đầu bằng 0.
type ComparisonChanges struct {
	RevenueChange       *string `json:"revenueChange"`       // % thay đổi doanh thu
	UnitsChange         *string `json:"unitsChange"`         // % thay đổi số lượng bán
	AvgOrderValueChange *string `json:"avgOrderValueChange"` // % thay đổi giá trị đơn trung bình
}

// ComparisonResult là kết quả so sánh hiệu suất giữa hai chu kỳ
type ComparisonResult struct {
	StartPeriod models.ProductPerformance `json:"startPeriod"` // Snapshot chu kỳ đầu
	EndPeriod   models.ProductPerformance `json:"endPeriod"`   // Snapshot chu kỳ cuối
	Changes     ComparisonChanges         `json:"changes"`     // Phần trăm thay đổi
}

// PerformanceUpdateResult là kết quả của thao tác tính lại hiệu suất
type PerformanceUpdateResult struct {
	Performance models.ProductPerformance `json:"performance"` // Snapshot sau khi upsert
	Summary     PerformanceUpdateSummary  `json:"summary"`     // Số liệu tổng quan của lần tính
}

// PerformanceUpdateSummary số liệu tổng quan trả kèm sau khi tính lại
type PerformanceUpdateSummary struct {
	TotalRevenue       float64 `json:"totalRevenue"`       // Tổng doanh thu
	TotalUnitsSold     int64   `json:"totalUnitsSold"`     // Tổng số lượng bán
	AvgOrderValue      float64 `json:"avgOrderValue"`      // Giá trị đơn trung bình
	TotalOrders        int64   `json:"totalOrders"`        // Số đơn
	ProductsAnalyzed   int     `json:"productsAnalyzed"`   // Số sản phẩm có phát sinh bán
	CategoriesAnalyzed int     `json:"categoriesAnalyzed"` // Số danh mục có phát sinh bán
}
