// Package analyticssvc - Test dựng snapshot tổng hợp doanh thu tháng.
package analyticssvc

import (
	"testing"

	"pos_insight/internal/api/analytics/models"
)

func TestBuildSalesSummaryData_ZeroTransactions(t *testing.T) {
	// Tháng không có đơn nào vẫn ra snapshot hợp lệ với toàn số 0
	data := buildSalesSummaryData(2, 2025, monthlySummaryInputs{}, 1700000000)

	if data["month"] != 2 || data["year"] != 2025 {
		t.Errorf("khóa chu kỳ = (%v, %v), muốn (2, 2025)", data["month"], data["year"])
	}
	if data["totalRevenue"] != float64(0) {
		t.Errorf("totalRevenue = %v, muốn 0", data["totalRevenue"])
	}
	if data["numberOfOrders"] != int64(0) {
		t.Errorf("numberOfOrders = %v, muốn 0", data["numberOfOrders"])
	}
	if data["averageOrderValue"] != float64(0) {
		t.Errorf("averageOrderValue phải là 0 khi không có đơn (không chia cho 0), nhận: %v", data["averageOrderValue"])
	}
	if data["totalProductsSold"] != int64(0) {
		t.Errorf("totalProductsSold = %v, muốn 0", data["totalProductsSold"])
	}

	bestDay, ok := data["bestDay"].(*models.BestDay)
	if !ok || bestDay != nil {
		t.Errorf("bestDay phải là nil khi không có đơn, nhận: %v", data["bestDay"])
	}

	topProducts, ok := data["topProducts"].([]models.TopProduct)
	if !ok || topProducts == nil || len(topProducts) != 0 {
		t.Errorf("topProducts phải là danh sách rỗng (không nil), nhận: %v", data["topProducts"])
	}
	topCategories, ok := data["topCategories"].([]models.TopCategory)
	if !ok || topCategories == nil || len(topCategories) != 0 {
		t.Errorf("topCategories phải là danh sách rỗng (không nil), nhận: %v", data["topCategories"])
	}
	lowProducts, ok := data["lowProducts"].([]models.LowStockProduct)
	if !ok || lowProducts == nil || len(lowProducts) != 0 {
		t.Errorf("lowProducts phải là danh sách rỗng (không nil), nhận: %v", data["lowProducts"])
	}
}

func TestBuildSalesSummaryData_AverageOrderValue(t *testing.T) {
	// Ba đơn 100 + 200 + 300 trong tháng 6/2025
	in := monthlySummaryInputs{
		TotalRevenue:      600,
		NumberOfOrders:    3,
		TotalProductsSold: 6,
		BestDay:           &models.BestDay{Date: "2025-06-15", TotalRevenue: 300, NumberOfOrders: 1},
	}

	data := buildSalesSummaryData(6, 2025, in, 1700000000)

	if data["totalRevenue"] != float64(600) {
		t.Errorf("totalRevenue = %v, muốn 600", data["totalRevenue"])
	}
	if data["numberOfOrders"] != int64(3) {
		t.Errorf("numberOfOrders = %v, muốn 3", data["numberOfOrders"])
	}
	if data["averageOrderValue"] != float64(200) {
		t.Errorf("averageOrderValue = %v, muốn 200", data["averageOrderValue"])
	}
	if data["computedAt"] != int64(1700000000) {
		t.Errorf("computedAt = %v, muốn 1700000000", data["computedAt"])
	}

	bestDay, ok := data["bestDay"].(*models.BestDay)
	if !ok || bestDay == nil || bestDay.Date != "2025-06-15" {
		t.Errorf("bestDay = %v, muốn ngày 2025-06-15", data["bestDay"])
	}
}
