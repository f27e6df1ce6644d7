// Package analyticssvc - Test dẫn xuất số liệu hiệu suất từ kết quả aggregation.
package analyticssvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildPerformanceData_MergesProductAcrossCategories(t *testing.T) {
	productID := primitive.NewObjectID()
	catA := primitive.NewObjectID()
	catB := primitive.NewObjectID()

	// Cùng một sản phẩm xuất hiện ở hai danh mục (dữ liệu category thay đổi giữa kỳ)
	row := performanceAggRow{
		TotalRevenue: 300,
		TotalUnits:   30,
		TotalOrders:  2,
		ProductStats: []performanceStat{
			{ProductID: productID, CategoryID: catA, Revenue: 100, Units: 10, ProductName: "Cà phê sữa", CategoryName: "Đồ uống"},
			{ProductID: productID, CategoryID: catB, Revenue: 200, Units: 20, ProductName: "Cà phê sữa", CategoryName: "Khuyến mãi"},
		},
	}

	perf, summary := buildPerformanceData(row, 5, 2025)

	if len(perf.TopProducts) != 1 {
		t.Fatalf("TopProducts phải gom về 1 sản phẩm, nhận: %d", len(perf.TopProducts))
	}
	top := perf.TopProducts[0]
	if top.UnitsSold != 30 || top.Revenue != 300 {
		t.Errorf("sản phẩm phải được cộng dồn qua các danh mục, nhận: units=%d revenue=%v", top.UnitsSold, top.Revenue)
	}
	if summary.ProductsAnalyzed != 1 {
		t.Errorf("ProductsAnalyzed = %d, muốn 1", summary.ProductsAnalyzed)
	}
	if summary.CategoriesAnalyzed != 2 {
		t.Errorf("CategoriesAnalyzed = %d, muốn 2", summary.CategoriesAnalyzed)
	}
}

func TestBuildPerformanceData_BestSellerAndTop5(t *testing.T) {
	cat := primitive.NewObjectID()
	ids := make([]primitive.ObjectID, 7)
	stats := make([]performanceStat, 0, 7)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
		stats = append(stats, performanceStat{
			ProductID:    ids[i],
			CategoryID:   cat,
			Revenue:      float64(100 * (i + 1)),
			Units:        int64(10 * (i + 1)), // sản phẩm cuối bán chạy nhất
			ProductName:  "SP",
			CategoryName: "DM",
		})
	}

	row := performanceAggRow{
		TotalRevenue: 2800,
		TotalUnits:   280,
		TotalOrders:  4,
		ProductStats: stats,
	}

	perf, _ := buildPerformanceData(row, 5, 2025)

	if len(perf.TopProducts) != 5 {
		t.Fatalf("TopProducts phải cắt còn 5, nhận: %d", len(perf.TopProducts))
	}
	if perf.TopProducts[0].UnitsSold != 70 {
		t.Errorf("top đầu phải là sản phẩm bán 70 đơn vị, nhận: %d", perf.TopProducts[0].UnitsSold)
	}
	for i := 1; i < len(perf.TopProducts); i++ {
		if perf.TopProducts[i].UnitsSold > perf.TopProducts[i-1].UnitsSold {
			t.Errorf("TopProducts phải sắp giảm dần theo UnitsSold: vị trí %d (%d) > vị trí %d (%d)",
				i, perf.TopProducts[i].UnitsSold, i-1, perf.TopProducts[i-1].UnitsSold)
		}
	}

	if perf.BestSellingProduct == nil {
		t.Fatal("BestSellingProduct không được nil")
	}
	if *perf.BestSellingProduct != ids[6] {
		t.Errorf("BestSellingProduct phải là sản phẩm bán nhiều nhất")
	}
}

func TestBuildPerformanceData_BestCategoryByRevenue(t *testing.T) {
	catA := primitive.NewObjectID()
	catB := primitive.NewObjectID()

	row := performanceAggRow{
		TotalRevenue: 900,
		TotalUnits:   90,
		TotalOrders:  3,
		ProductStats: []performanceStat{
			{ProductID: primitive.NewObjectID(), CategoryID: catA, Revenue: 200, Units: 60, ProductName: "A", CategoryName: "DM A"},
			{ProductID: primitive.NewObjectID(), CategoryID: catB, Revenue: 700, Units: 30, ProductName: "B", CategoryName: "DM B"},
		},
	}

	perf, _ := buildPerformanceData(row, 5, 2025)

	// Danh mục tốt nhất xét theo doanh thu, không theo số lượng
	if perf.BestSellingCategory == nil {
		t.Fatal("BestSellingCategory không được nil")
	}
	if *perf.BestSellingCategory != catB {
		t.Errorf("BestSellingCategory phải là danh mục có doanh thu cao nhất")
	}
}

func TestBuildPerformanceData_AvgOrderValueAndRounding(t *testing.T) {
	row := performanceAggRow{
		TotalRevenue: 100.456,
		TotalUnits:   10,
		TotalOrders:  3,
		ProductStats: []performanceStat{
			{ProductID: primitive.NewObjectID(), CategoryID: primitive.NewObjectID(), Revenue: 100.456, Units: 10, ProductName: "A", CategoryName: "DM"},
		},
	}

	perf, summary := buildPerformanceData(row, 5, 2025)

	// Giá trị lưu snapshot được làm tròn 2 chữ số
	if perf.TotalRevenue != 100.46 {
		t.Errorf("TotalRevenue lưu snapshot = %v, muốn 100.46", perf.TotalRevenue)
	}
	if perf.AvgOrderValue != 33.49 {
		t.Errorf("AvgOrderValue lưu snapshot = %v, muốn 33.49", perf.AvgOrderValue)
	}

	// Summary giữ số liệu thô
	if summary.TotalRevenue != 100.456 {
		t.Errorf("summary.TotalRevenue = %v, muốn giữ giá trị thô 100.456", summary.TotalRevenue)
	}
	if summary.TotalOrders != 3 {
		t.Errorf("summary.TotalOrders = %d, muốn 3", summary.TotalOrders)
	}
}

func TestBuildPerformanceData_ZeroOrdersDoesNotDivideByZero(t *testing.T) {
	row := performanceAggRow{
		TotalRevenue: 100,
		TotalUnits:   10,
		TotalOrders:  0,
		ProductStats: []performanceStat{
			{ProductID: primitive.NewObjectID(), CategoryID: primitive.NewObjectID(), Revenue: 100, Units: 10, ProductName: "A", CategoryName: "DM"},
		},
	}

	perf, _ := buildPerformanceData(row, 5, 2025)

	if perf.AvgOrderValue != 100 {
		t.Errorf("AvgOrderValue với 0 đơn phải chia cho 1, nhận: %v", perf.AvgOrderValue)
	}
}
