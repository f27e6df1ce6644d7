// Package analyticssvc - Tổng hợp doanh thu theo năm.
package analyticssvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pos_insight/internal/api/analytics/models"
	basesvc "pos_insight/internal/api/base/service"
	billingmodels "pos_insight/internal/api/billing/models"
	"pos_insight/internal/common"
	"pos_insight/internal/global"
)

// YearlySummaryService tính và lưu snapshot tổng hợp doanh thu theo năm.
// Khác với rollup tháng, số liệu năm được fold in-process từ danh sách bills
// thay vì chạy aggregation pipeline.
type YearlySummaryService struct {
	bills     *mongo.Collection
	snapshots *basesvc.BaseServiceMongoImpl[models.YearlySalesSummary]
}

// NewYearlySummaryService tạo service từ các collection đã đăng ký trong registry
func NewYearlySummaryService() (*YearlySummaryService, error) {
	bills, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Bills)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Bills, common.ErrNotFound)
	}
	snapshots, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.YearlySalesSummaries)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.YearlySalesSummaries, common.ErrNotFound)
	}

	return &YearlySummaryService{
		bills:     bills,
		snapshots: basesvc.NewBaseServiceMongo[models.YearlySalesSummary](snapshots),
	}, nil
}

// ComputeYear tính lại số liệu tổng hợp của một năm và upsert snapshot.
// Năm không có đơn nào vẫn được ghi snapshot với đủ 12 tháng số 0.
func (s *YearlySummaryService) ComputeYear(ctx context.Context, year int) (models.YearlySalesSummary, error) {
	var zero models.YearlySalesSummary

	if err := ValidateYear(year); err != nil {
		return zero, err
	}

	start, end := YearRange(year)
	filter := bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}}
	opts := options.Find().SetProjection(bson.M{
		"createdAt":         1,
		"finalAmount":       1,
		"products.quantity": 1,
	})

	cursor, err := s.bills.Find(ctx, filter, opts)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var bills []billingmodels.Bill
	if err := cursor.All(ctx, &bills); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	folded := foldYearlyBills(bills, reportLocation())

	data := bson.M{
		"year":              year,
		"totalRevenue":      folded.TotalRevenue,
		"totalOrders":       folded.TotalOrders,
		"totalProductsSold": folded.TotalProductsSold,
		"avgOrderValue":     folded.AvgOrderValue,
		"months":            folded.Months,
		"computedAt":        time.Now().Unix(),
	}

	return s.snapshots.Upsert(ctx, bson.M{"year": year}, data)
}

// GetYear đọc snapshot đã lưu của một năm. Trả về common.ErrNotFound nếu chưa tính.
func (s *YearlySummaryService) GetYear(ctx context.Context, year int) (models.YearlySalesSummary, error) {
	var zero models.YearlySalesSummary

	if err := ValidateYear(year); err != nil {
		return zero, err
	}

	return s.snapshots.FindOne(ctx, bson.M{"year": year}, options.FindOne())
}

// yearlyFoldResult là kết quả fold bills của một năm
type yearlyFoldResult struct {
	TotalRevenue      float64
	TotalOrders       int64
	TotalProductsSold int64
	AvgOrderValue     float64
	Months            []models.MonthlyBreakdown
}

// foldYearlyBills gom số liệu bills theo tháng và toàn năm.
// Tháng của mỗi bill được xác định theo giờ địa phương loc.
// Kết quả luôn có đủ 12 tháng, tháng không có đơn điền số 0.
func foldYearlyBills(bills []billingmodels.Bill, loc *time.Location) yearlyFoldResult {
	type monthAcc struct {
		revenue  float64
		orders   int64
		products int64
	}
	var acc [13]monthAcc // index 1..12

	var result yearlyFoldResult
	for _, bill := range bills {
		month := int(bill.CreatedAt.In(loc).Month())

		var productsCount int64
		for _, item := range bill.Products {
			productsCount += item.Quantity
		}

		result.TotalRevenue += bill.FinalAmount
		result.TotalOrders++
		result.TotalProductsSold += productsCount

		acc[month].revenue += bill.FinalAmount
		acc[month].orders++
		acc[month].products += productsCount
	}

	if result.TotalOrders > 0 {
		result.AvgOrderValue = result.TotalRevenue / float64(result.TotalOrders)
	}

	result.Months = make([]models.MonthlyBreakdown, 0, 12)
	for m := 1; m <= 12; m++ {
		entry := models.MonthlyBreakdown{
			Month:    m,
			Revenue:  acc[m].revenue,
			Orders:   acc[m].orders,
			Products: acc[m].products,
		}
		if entry.Orders > 0 {
			entry.AvgOrderValue = entry.Revenue / float64(entry.Orders)
		}
		result.Months = append(result.Months, entry)
	}

	return result
}
