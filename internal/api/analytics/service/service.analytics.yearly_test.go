// Package analyticssvc - Test fold số liệu bills theo năm.
package analyticssvc

import (
	"testing"
	"time"

	billingmodels "pos_insight/internal/api/billing/models"
)

func makeBill(createdAt time.Time, finalAmount float64, quantities ...int64) billingmodels.Bill {
	items := make([]billingmodels.BillLineItem, 0, len(quantities))
	for _, q := range quantities {
		items = append(items, billingmodels.BillLineItem{Quantity: q})
	}
	return billingmodels.Bill{
		FinalAmount: finalAmount,
		Products:    items,
		CreatedAt:   createdAt,
	}
}

func TestFoldYearlyBills_Empty(t *testing.T) {
	result := foldYearlyBills(nil, time.UTC)

	if result.TotalRevenue != 0 || result.TotalOrders != 0 || result.TotalProductsSold != 0 {
		t.Errorf("fold rỗng phải ra toàn số 0, nhận: %+v", result)
	}
	if result.AvgOrderValue != 0 {
		t.Errorf("AvgOrderValue phải là 0 khi không có đơn, nhận: %v", result.AvgOrderValue)
	}
	if len(result.Months) != 12 {
		t.Fatalf("Months phải luôn có đủ 12 tháng, nhận: %d", len(result.Months))
	}
	for i, m := range result.Months {
		if m.Month != i+1 {
			t.Errorf("Months[%d].Month = %d, muốn %d", i, m.Month, i+1)
		}
		if m.Revenue != 0 || m.Orders != 0 || m.Products != 0 || m.AvgOrderValue != 0 {
			t.Errorf("tháng %d không có đơn phải điền số 0, nhận: %+v", m.Month, m)
		}
	}
}

func TestFoldYearlyBills_PartitionsByMonth(t *testing.T) {
	loc := time.UTC
	bills := []billingmodels.Bill{
		makeBill(time.Date(2025, 3, 10, 8, 0, 0, 0, loc), 100, 2, 3),
		makeBill(time.Date(2025, 3, 25, 20, 0, 0, 0, loc), 300, 1),
		makeBill(time.Date(2025, 7, 1, 0, 0, 0, 0, loc), 50, 4),
	}

	result := foldYearlyBills(bills, loc)

	if result.TotalRevenue != 450 {
		t.Errorf("TotalRevenue = %v, muốn 450", result.TotalRevenue)
	}
	if result.TotalOrders != 3 {
		t.Errorf("TotalOrders = %d, muốn 3", result.TotalOrders)
	}
	if result.TotalProductsSold != 10 {
		t.Errorf("TotalProductsSold = %d, muốn 10", result.TotalProductsSold)
	}
	if result.AvgOrderValue != 150 {
		t.Errorf("AvgOrderValue = %v, muốn 150", result.AvgOrderValue)
	}

	march := result.Months[2]
	if march.Revenue != 400 || march.Orders != 2 || march.Products != 6 {
		t.Errorf("tháng 3 = %+v, muốn revenue 400, orders 2, products 6", march)
	}
	if march.AvgOrderValue != 200 {
		t.Errorf("AvgOrderValue tháng 3 = %v, muốn 200", march.AvgOrderValue)
	}

	july := result.Months[6]
	if july.Revenue != 50 || july.Orders != 1 || july.Products != 4 {
		t.Errorf("tháng 7 = %+v, muốn revenue 50, orders 1, products 4", july)
	}

	// Tháng không có đơn vẫn xuất hiện với số 0
	if result.Months[0].Orders != 0 {
		t.Errorf("tháng 1 không có đơn, Orders = %d", result.Months[0].Orders)
	}
}

func TestFoldYearlyBills_UsesLocationForMonth(t *testing.T) {
	// 2025-03-31 23:00 UTC là 2025-04-01 06:00 tại Asia/Ho_Chi_Minh (+7)
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("không load được timezone: %v", err)
	}

	bills := []billingmodels.Bill{
		makeBill(time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC), 100, 1),
	}

	result := foldYearlyBills(bills, loc)

	if result.Months[2].Orders != 0 {
		t.Errorf("đơn phải không thuộc tháng 3 theo giờ địa phương, tháng 3 Orders = %d", result.Months[2].Orders)
	}
	if result.Months[3].Orders != 1 {
		t.Errorf("đơn phải thuộc tháng 4 theo giờ địa phương, tháng 4 Orders = %d", result.Months[3].Orders)
	}
}
