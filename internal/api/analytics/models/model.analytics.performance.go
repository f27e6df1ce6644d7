// Package models - ProductPerformance thuộc domain Analytics.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PerformanceTopProduct là một sản phẩm trong top của snapshot hiệu suất
type PerformanceTopProduct struct {
	Product   primitive.ObjectID `json:"product" bson:"product"`     // Tham chiếu sản phẩm
	Name      string             `json:"name" bson:"name"`           // Tên sản phẩm
	UnitsSold int64              `json:"unitsSold" bson:"unitsSold"` // Số lượng đã bán
	Revenue   float64            `json:"revenue" bson:"revenue"`     // Doanh thu
}

// ProductPerformance lưu snapshot hiệu suất sản phẩm theo tháng (product_performances).
// Mỗi cặp (month, year) chỉ có một bản ghi, được upsert mỗi lần tính lại.
type ProductPerformance struct {
	ID                  primitive.ObjectID      `json:"id,omitempty" bson:"_id,omitempty"`                                        // MongoDB _id
	Month               int                     `json:"month" bson:"month"`                                                       // Tháng báo cáo (1-12)
	Year                int                     `json:"year" bson:"year"`                                                         // Năm báo cáo
	TotalRevenue        float64                 `json:"totalRevenue" bson:"totalRevenue"`                                         // Tổng doanh thu (làm tròn 2 chữ số)
	TotalUnitsSold      int64                   `json:"totalUnitsSold" bson:"totalUnitsSold"`                                     // Tổng số lượng đã bán
	TotalOrders         int64                   `json:"totalOrders" bson:"totalOrders"`                                           // Số đơn hàng có sản phẩm
	AvgOrderValue       float64                 `json:"avgOrderValue" bson:"avgOrderValue"`                                       // Giá trị đơn trung bình (làm tròn 2 chữ số)
	BestSellingProduct  *primitive.ObjectID     `json:"bestSellingProduct,omitempty" bson:"bestSellingProduct,omitempty"`         // Sản phẩm bán chạy nhất theo số lượng
	BestSellingCategory *primitive.ObjectID     `json:"bestSellingCategory,omitempty" bson:"bestSellingCategory,omitempty"`       // Danh mục doanh thu cao nhất
	TopProducts         []PerformanceTopProduct `json:"topProducts" bson:"topProducts"`                                           // Top 5 sản phẩm theo số lượng bán
	ComputedAt          int64                   `json:"computedAt" bson:"computedAt"`                                             // Unix seconds
	CreatedAt           int64                   `json:"createdAt" bson:"createdAt"`                                               // Unix seconds
	UpdatedAt           int64                   `json:"updatedAt" bson:"updatedAt"`                                               // Unix seconds
}
