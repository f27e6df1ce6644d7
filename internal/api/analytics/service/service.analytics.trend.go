// Package analyticssvc - Tính phần trăm thay đổi và điểm hiệu suất.
package analyticssvc

import (
	"fmt"
	"math"
)

// PercentChange trả về phần trăm thay đổi từ base lên current dưới dạng chuỗi
// 2 chữ số thập phân (vd "50.00"). Trả về nil khi base bằng 0 vì không chia được.
func PercentChange(current, base float64) *string {
	if base == 0 {
		return nil
	}
	s := fmt.Sprintf("%.2f", (current-base)/base*100)
	return &s
}

// round2 làm tròn về 2 chữ số thập phân
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PerformanceScore tính điểm hiệu suất 0-100 của một tháng:
//   - doanh thu: min(revenue/10000, 1) * 50
//   - số lượng bán: min(units/1000, 1) * 30
//   - độ đa dạng: min(số sản phẩm trong top, 5) * 4
//
// Trả về 0 khi doanh thu hoặc số lượng bán bằng 0.
func PerformanceScore(totalRevenue float64, totalUnitsSold int64, topProductsCount int) int {
	if totalRevenue == 0 || totalUnitsSold == 0 {
		return 0
	}

	revenueScore := math.Min(totalRevenue/10000, 1) * 50
	unitsScore := math.Min(float64(totalUnitsSold)/1000, 1) * 30
	diversity := topProductsCount
	if diversity > 5 {
		diversity = 5
	}
	diversityScore := float64(diversity) * 4

	return int(math.Round(revenueScore + unitsScore + diversityScore))
}
