// Package analyticssvc - Hiệu suất sản phẩm theo tháng: tính, đọc kèm trends, so sánh chu kỳ.
package analyticssvc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	analyticsdto "pos_insight/internal/api/analytics/dto"
	"pos_insight/internal/api/analytics/models"
	basesvc "pos_insight/internal/api/base/service"
	"pos_insight/internal/common"
	"pos_insight/internal/global"
)

// ProductPerformanceService tính và lưu snapshot hiệu suất sản phẩm theo tháng.
// Đọc bills (kèm lookup products/categories), ghi product_performances.
type ProductPerformanceService struct {
	bills     *mongo.Collection
	snapshots *basesvc.BaseServiceMongoImpl[models.ProductPerformance]
}

// NewProductPerformanceService tạo service từ các collection đã đăng ký trong registry
func NewProductPerformanceService() (*ProductPerformanceService, error) {
	bills, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Bills)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Bills, common.ErrNotFound)
	}
	snapshots, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.ProductPerformances)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.ProductPerformances, common.ErrNotFound)
	}

	return &ProductPerformanceService{
		bills:     bills,
		snapshots: basesvc.NewBaseServiceMongo[models.ProductPerformance](snapshots),
	}, nil
}

// performanceStat là số liệu của một cặp (sản phẩm, danh mục) sau aggregation
type performanceStat struct {
	ProductID    primitive.ObjectID `bson:"productId"`
	CategoryID   primitive.ObjectID `bson:"categoryId"`
	Revenue      float64            `bson:"revenue"`
	Units        int64              `bson:"units"`
	ProductName  string             `bson:"productName"`
	CategoryName string             `bson:"categoryName"`
}

// performanceAggRow là dòng kết quả duy nhất của pipeline tính hiệu suất
type performanceAggRow struct {
	TotalRevenue float64           `bson:"totalRevenue"`
	TotalUnits   int64             `bson:"totalUnits"`
	TotalOrders  int64             `bson:"totalOrders"`
	ProductStats []performanceStat `bson:"productStats"`
}

// ComputeMonth tính lại hiệu suất sản phẩm của một tháng và upsert snapshot.
// Khác với rollup doanh thu, tháng không có giao dịch KHÔNG được ghi snapshot
// mà trả về common.ErrNoDataForPeriod.
func (s *ProductPerformanceService) ComputeMonth(ctx context.Context, month, year int) (analyticsdto.PerformanceUpdateResult, error) {
	var zero analyticsdto.PerformanceUpdateResult

	if err := ValidateMonthYear(month, year); err != nil {
		return zero, err
	}

	start, end := MonthRange(month, year)

	pipeline := []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}}},
		{"$unwind": "$products"},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Products,
			"localField":   "products.product",
			"foreignField": "_id",
			"as":           "productDetails",
		}},
		{"$unwind": "$productDetails"},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Categories,
			"localField":   "productDetails.category",
			"foreignField": "_id",
			"as":           "categoryDetails",
		}},
		{"$unwind": "$categoryDetails"},
		{"$group": bson.M{
			"_id": bson.M{
				"productId":  "$productDetails._id",
				"categoryId": "$categoryDetails._id",
			},
			"revenue":      bson.M{"$sum": "$products.totalPrice"},
			"units":        bson.M{"$sum": "$products.quantity"},
			"productName":  bson.M{"$first": "$productDetails.name"},
			"categoryName": bson.M{"$first": "$categoryDetails.name"},
			"billIds":      bson.M{"$addToSet": "$_id"},
		}},
		{"$group": bson.M{
			"_id":          nil,
			"totalRevenue": bson.M{"$sum": "$revenue"},
			"totalUnits":   bson.M{"$sum": "$units"},
			"totalOrders":  bson.M{"$sum": bson.M{"$size": "$billIds"}},
			"productStats": bson.M{"$push": bson.M{
				"productId":    "$_id.productId",
				"categoryId":   "$_id.categoryId",
				"revenue":      "$revenue",
				"units":        "$units",
				"productName":  "$productName",
				"categoryName": "$categoryName",
			}},
		}},
	}

	cursor, err := s.bills.Aggregate(ctx, pipeline)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var row performanceAggRow
	hasRow := cursor.Next(ctx)
	if hasRow {
		if err := cursor.Decode(&row); err != nil {
			return zero, common.ConvertMongoError(err)
		}
	}
	if !hasRow || len(row.ProductStats) == 0 {
		return zero, common.ErrNoDataForPeriod
	}

	perf, summary := buildPerformanceData(row, month, year)

	data := bson.M{
		"month":               month,
		"year":                year,
		"totalRevenue":        perf.TotalRevenue,
		"totalUnitsSold":      perf.TotalUnitsSold,
		"totalOrders":         perf.TotalOrders,
		"avgOrderValue":       perf.AvgOrderValue,
		"bestSellingProduct":  perf.BestSellingProduct,
		"bestSellingCategory": perf.BestSellingCategory,
		"topProducts":         perf.TopProducts,
		"computedAt":          time.Now().Unix(),
	}

	saved, err := s.snapshots.Upsert(ctx, bson.M{"month": month, "year": year}, data)
	if err != nil {
		return zero, err
	}

	return analyticsdto.PerformanceUpdateResult{
		Performance: saved,
		Summary:     summary,
	}, nil
}

// buildPerformanceData gom productStats theo sản phẩm và danh mục rồi dẫn xuất
// best seller, top 5 sản phẩm theo số lượng, danh mục doanh thu cao nhất.
// Hàm thuần, không chạm database.
func buildPerformanceData(row performanceAggRow, month, year int) (models.ProductPerformance, analyticsdto.PerformanceUpdateSummary) {
	type productAcc struct {
		revenue float64
		units   int64
		name    string
	}
	type categoryAcc struct {
		revenue float64
		name    string
	}

	productStats := make(map[primitive.ObjectID]*productAcc)
	categoryStats := make(map[primitive.ObjectID]*categoryAcc)
	productOrder := []primitive.ObjectID{}

	for _, item := range row.ProductStats {
		p, ok := productStats[item.ProductID]
		if !ok {
			p = &productAcc{name: item.ProductName}
			productStats[item.ProductID] = p
			productOrder = append(productOrder, item.ProductID)
		}
		p.revenue += item.Revenue
		p.units += item.Units

		c, ok := categoryStats[item.CategoryID]
		if !ok {
			c = &categoryAcc{name: item.CategoryName}
			categoryStats[item.CategoryID] = c
		}
		c.revenue += item.Revenue
	}

	// Best seller theo số lượng và danh sách top products
	var bestSellingProduct *primitive.ObjectID
	var maxUnits int64
	topProducts := make([]models.PerformanceTopProduct, 0, len(productOrder))
	for _, productID := range productOrder {
		stats := productStats[productID]
		if stats.units > maxUnits {
			id := productID
			bestSellingProduct = &id
			maxUnits = stats.units
		}
		topProducts = append(topProducts, models.PerformanceTopProduct{
			Product:   productID,
			Name:      stats.name,
			UnitsSold: stats.units,
			Revenue:   stats.revenue,
		})
	}

	sort.SliceStable(topProducts, func(i, j int) bool {
		return topProducts[i].UnitsSold > topProducts[j].UnitsSold
	})
	if len(topProducts) > 5 {
		topProducts = topProducts[:5]
	}

	// Danh mục có doanh thu cao nhất
	var bestSellingCategory *primitive.ObjectID
	var maxCategoryRevenue float64
	for categoryID, stats := range categoryStats {
		if stats.revenue > maxCategoryRevenue {
			id := categoryID
			bestSellingCategory = &id
			maxCategoryRevenue = stats.revenue
		}
	}

	totalOrders := row.TotalOrders
	divOrders := totalOrders
	if divOrders == 0 {
		divOrders = 1
	}
	avgOrderValue := row.TotalRevenue / float64(divOrders)

	perf := models.ProductPerformance{
		Month:               month,
		Year:                year,
		TotalRevenue:        round2(row.TotalRevenue),
		TotalUnitsSold:      row.TotalUnits,
		TotalOrders:         totalOrders,
		AvgOrderValue:       round2(avgOrderValue),
		BestSellingProduct:  bestSellingProduct,
		BestSellingCategory: bestSellingCategory,
		TopProducts:         topProducts,
	}

	summary := analyticsdto.PerformanceUpdateSummary{
		TotalRevenue:       row.TotalRevenue,
		TotalUnitsSold:     row.TotalUnits,
		AvgOrderValue:      avgOrderValue,
		TotalOrders:        totalOrders,
		ProductsAnalyzed:   len(productStats),
		CategoriesAnalyzed: len(categoryStats),
	}

	return perf, summary
}

// GetMonthlyView đọc snapshot một tháng kèm các trường dẫn xuất: tên tháng,
// điểm hiệu suất và tăng trưởng so với tháng liền trước.
// Trả về common.ErrNoDataForPeriod nếu tháng chưa có snapshot.
func (s *ProductPerformanceService) GetMonthlyView(ctx context.Context, month, year int) (analyticsdto.PerformanceView, error) {
	var zero analyticsdto.PerformanceView

	if err := ValidateMonthYear(month, year); err != nil {
		return zero, err
	}

	current, err := s.snapshots.FindOne(ctx, bson.M{"month": month, "year": year}, options.FindOne())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.ErrNoDataForPeriod
		}
		return zero, err
	}

	return analyticsdto.PerformanceView{
		ProductPerformance: current,
		MonthName:          MonthName(month),
		PerformanceScore:   PerformanceScore(current.TotalRevenue, current.TotalUnitsSold, len(current.TopProducts)),
		Trends:             s.calculateTrends(ctx, current),
	}, nil
}

// GetCurrentView đọc view của tháng hiện tại theo ReportTimezone
func (s *ProductPerformanceService) GetCurrentView(ctx context.Context) (analyticsdto.PerformanceView, error) {
	month, year := CurrentPeriod()
	return s.GetMonthlyView(ctx, month, year)
}

// GetPreviousView đọc view của tháng liền trước theo ReportTimezone
func (s *ProductPerformanceService) GetPreviousView(ctx context.Context) (analyticsdto.PerformanceView, error) {
	month, year := CurrentPeriod()
	prevMonth, prevYear := PreviousPeriod(month, year)
	return s.GetMonthlyView(ctx, prevMonth, prevYear)
}

// calculateTrends tính tăng trưởng so với tháng liền trước.
// Trả về nil khi tháng trước chưa có snapshot hoặc đọc lỗi (trends là optional).
func (s *ProductPerformanceService) calculateTrends(ctx context.Context, current models.ProductPerformance) *analyticsdto.TrendResult {
	prevMonth, prevYear := PreviousPeriod(current.Month, current.Year)

	prev, err := s.snapshots.FindOne(ctx, bson.M{"month": prevMonth, "year": prevYear}, options.FindOne())
	if err != nil {
		return nil
	}

	return &analyticsdto.TrendResult{
		RevenueGrowth: PercentChange(current.TotalRevenue, prev.TotalRevenue),
		UnitsGrowth:   PercentChange(float64(current.TotalUnitsSold), float64(prev.TotalUnitsSold)),
	}
}

// Compare so sánh hiệu suất giữa hai chu kỳ đã có snapshot.
// Hai chu kỳ được sắp theo thời gian tăng dần, chu kỳ sớm hơn làm mốc so sánh.
// Trả về common.ErrMissingPeriodData nếu thiếu snapshot của một trong hai chu kỳ.
func (s *ProductPerformanceService) Compare(ctx context.Context, q analyticsdto.ComparisonQuery) (analyticsdto.ComparisonResult, error) {
	var zero analyticsdto.ComparisonResult

	if err := ValidateMonthYear(q.StartMonth, q.StartYear); err != nil {
		return zero, err
	}
	if err := ValidateMonthYear(q.EndMonth, q.EndYear); err != nil {
		return zero, err
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"month": q.StartMonth, "year": q.StartYear},
		bson.M{"month": q.EndMonth, "year": q.EndYear},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}})

	performances, err := s.snapshots.Find(ctx, filter, opts)
	if err != nil {
		return zero, err
	}

	if len(performances) != 2 {
		return zero, common.ErrMissingPeriodData
	}

	startPeriod, endPeriod := performances[0], performances[1]

	changes := analyticsdto.ComparisonChanges{
		RevenueChange: PercentChange(endPeriod.TotalRevenue, startPeriod.TotalRevenue),
		UnitsChange:   PercentChange(float64(endPeriod.TotalUnitsSold), float64(startPeriod.TotalUnitsSold)),
	}
	if startPeriod.AvgOrderValue != 0 && endPeriod.AvgOrderValue != 0 {
		changes.AvgOrderValueChange = PercentChange(endPeriod.AvgOrderValue, startPeriod.AvgOrderValue)
	}

	return analyticsdto.ComparisonResult{
		StartPeriod: startPeriod,
		EndPeriod:   endPeriod,
		Changes:     changes,
	}, nil
}
