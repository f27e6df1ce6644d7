// Package models - Các snapshot tổng hợp thuộc domain Analytics.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BestDay là ngày có doanh thu cao nhất trong tháng
type BestDay struct {
	Date           string  `json:"date" bson:"date"`                     // Ngày dạng YYYY-MM-DD (theo ReportTimezone)
	TotalRevenue   float64 `json:"totalRevenue" bson:"totalRevenue"`     // Doanh thu của ngày
	NumberOfOrders int64   `json:"numberOfOrders" bson:"numberOfOrders"` // Số đơn của ngày
}

// TopProduct là một sản phẩm trong top bán chạy của tháng
type TopProduct struct {
	ProductID    primitive.ObjectID `json:"productId" bson:"productId"`       // Tham chiếu sản phẩm
	Name         string             `json:"name" bson:"name"`                 // Tên sản phẩm
	QuantitySold int64              `json:"quantitySold" bson:"quantitySold"` // Số lượng đã bán
	Revenue      float64            `json:"revenue" bson:"revenue"`           // Doanh thu của sản phẩm
}

// TopCategory là một danh mục trong top doanh thu của tháng
type TopCategory struct {
	CategoryID    primitive.ObjectID `json:"categoryId" bson:"categoryId"`       // Tham chiếu danh mục
	Name          string             `json:"name" bson:"name"`                   // Tên danh mục
	TotalQuantity int64              `json:"totalQuantity" bson:"totalQuantity"` // Tổng số lượng đã bán
	TotalRevenue  float64            `json:"totalRevenue" bson:"totalRevenue"`   // Tổng doanh thu
}

// LowStockProduct là sản phẩm có tồn kho chạm ngưỡng cảnh báo
// tại thời điểm tính snapshot (không gắn với chu kỳ báo cáo)
type LowStockProduct struct {
	ProductID     primitive.ObjectID `json:"productId" bson:"productId"`         // Tham chiếu sản phẩm
	Name          string             `json:"name" bson:"name"`                   // Tên sản phẩm
	StockQuantity int64              `json:"stockQuantity" bson:"stockQuantity"` // Tồn kho hiện tại
	AlertQuantity int64              `json:"alertQuantity" bson:"alertQuantity"` // Ngưỡng cảnh báo
}

// SalesSummary lưu kết quả tổng hợp doanh thu theo tháng (sales_summaries).
// Mỗi cặp (month, year) chỉ có một bản ghi, được upsert mỗi lần tính lại.
type SalesSummary struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`           // MongoDB _id
	Month             int                `json:"month" bson:"month"`                          // Tháng báo cáo (1-12)
	Year              int                `json:"year" bson:"year"`                            // Năm báo cáo
	TotalProductsSold int64              `json:"totalProductsSold" bson:"totalProductsSold"`  // Tổng số sản phẩm đã bán
	TotalRevenue      float64            `json:"totalRevenue" bson:"totalRevenue"`            // Tổng doanh thu (sum finalAmount)
	NumberOfOrders    int64              `json:"numberOfOrders" bson:"numberOfOrders"`        // Số đơn hàng
	AverageOrderValue float64            `json:"averageOrderValue" bson:"averageOrderValue"`  // Giá trị đơn trung bình (0 nếu không có đơn)
	BestDay           *BestDay           `json:"bestDay,omitempty" bson:"bestDay,omitempty"`  // Ngày doanh thu cao nhất (nil nếu không có đơn)
	TopProducts       []TopProduct       `json:"topProducts" bson:"topProducts"`              // Top 5 sản phẩm theo số lượng bán
	TopCategories     []TopCategory      `json:"topCategories" bson:"topCategories"`          // Top 3 danh mục theo doanh thu
	LowProducts       []LowStockProduct  `json:"lowProducts" bson:"lowProducts"`              // Sản phẩm tồn kho thấp tại thời điểm tính
	ComputedAt        int64              `json:"computedAt" bson:"computedAt"`                // Unix seconds
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`                  // Unix seconds
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`                  // Unix seconds
}
