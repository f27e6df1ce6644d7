// Package models - YearlySalesSummary thuộc domain Analytics.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MonthlyBreakdown là số liệu của một tháng trong snapshot theo năm
type MonthlyBreakdown struct {
	Month         int     `json:"month" bson:"month"`                 // Tháng (1-12)
	Revenue       float64 `json:"revenue" bson:"revenue"`             // Doanh thu của tháng
	Orders        int64   `json:"orders" bson:"orders"`               // Số đơn của tháng
	Products      int64   `json:"products" bson:"products"`           // Số sản phẩm đã bán của tháng
	AvgOrderValue float64 `json:"avgOrderValue" bson:"avgOrderValue"` // Giá trị đơn trung bình của tháng
}

// YearlySalesSummary lưu kết quả tổng hợp doanh thu theo năm (yearly_sales_summaries).
// Months luôn có đủ 12 phần tử, các tháng không có đơn được điền số 0.
type YearlySalesSummary struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`          // MongoDB _id
	Year              int                `json:"year" bson:"year"`                           // Năm báo cáo, unique
	TotalRevenue      float64            `json:"totalRevenue" bson:"totalRevenue"`           // Tổng doanh thu của năm
	TotalOrders       int64              `json:"totalOrders" bson:"totalOrders"`             // Tổng số đơn của năm
	TotalProductsSold int64              `json:"totalProductsSold" bson:"totalProductsSold"` // Tổng số sản phẩm đã bán
	AvgOrderValue     float64            `json:"avgOrderValue" bson:"avgOrderValue"`         // Giá trị đơn trung bình của năm
	Months            []MonthlyBreakdown `json:"months" bson:"months"`                       // Breakdown đủ 12 tháng
	ComputedAt        int64              `json:"computedAt" bson:"computedAt"`               // Unix seconds
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`                 // Unix seconds
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`                 // Unix seconds
}
