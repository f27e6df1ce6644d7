// Package analyticssvc - Rollup engine tính tổng hợp doanh thu theo tháng.
package analyticssvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pos_insight/internal/api/analytics/models"
	basesvc "pos_insight/internal/api/base/service"
	"pos_insight/internal/common"
	"pos_insight/internal/global"
)

// SalesSummaryService tính và lưu snapshot tổng hợp doanh thu theo tháng.
// Đọc bills/products, ghi sales_summaries (upsert theo khóa month+year).
type SalesSummaryService struct {
	bills     *mongo.Collection
	products  *mongo.Collection
	snapshots *basesvc.BaseServiceMongoImpl[models.SalesSummary]
}

// NewSalesSummaryService tạo service từ các collection đã đăng ký trong registry
func NewSalesSummaryService() (*SalesSummaryService, error) {
	bills, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Bills)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Bills, common.ErrNotFound)
	}
	products, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	snapshots, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.SalesSummaries)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.SalesSummaries, common.ErrNotFound)
	}

	return &SalesSummaryService{
		bills:     bills,
		products:  products,
		snapshots: basesvc.NewBaseServiceMongo[models.SalesSummary](snapshots),
	}, nil
}

// ComputeMonth tính lại toàn bộ số liệu tổng hợp của một tháng và upsert snapshot.
// Tháng không có đơn nào vẫn được ghi snapshot với các số liệu bằng 0 và bestDay = nil.
func (s *SalesSummaryService) ComputeMonth(ctx context.Context, month, year int) (models.SalesSummary, error) {
	var zero models.SalesSummary

	if err := ValidateMonthYear(month, year); err != nil {
		return zero, err
	}

	start, end := MonthRange(month, year)
	match := bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}}

	var in monthlySummaryInputs
	var err error

	in.TotalRevenue, in.NumberOfOrders, err = s.aggregateRevenue(ctx, match)
	if err != nil {
		return zero, err
	}

	in.TotalProductsSold, err = s.aggregateUnitsSold(ctx, match)
	if err != nil {
		return zero, err
	}

	in.BestDay, err = s.aggregateBestDay(ctx, match)
	if err != nil {
		return zero, err
	}

	in.TopProducts, err = s.aggregateTopProducts(ctx, match)
	if err != nil {
		return zero, err
	}

	in.TopCategories, err = s.aggregateTopCategories(ctx, match)
	if err != nil {
		return zero, err
	}

	in.LowProducts, err = s.findLowStockProducts(ctx)
	if err != nil {
		return zero, err
	}

	// Upsert snapshot theo khóa chu kỳ. createdAt do base service set khi insert.
	data := buildSalesSummaryData(month, year, in, time.Now().Unix())

	return s.snapshots.Upsert(ctx, bson.M{"month": month, "year": year}, data)
}

// monthlySummaryInputs gom kết quả các bước aggregation của một tháng
type monthlySummaryInputs struct {
	TotalRevenue      float64
	NumberOfOrders    int64
	TotalProductsSold int64
	BestDay           *models.BestDay
	TopProducts       []models.TopProduct
	TopCategories     []models.TopCategory
	LowProducts       []models.LowStockProduct
}

// buildSalesSummaryData dựng document snapshot từ kết quả aggregation.
// Tháng không có đơn ra toàn số 0, bestDay nil và các danh sách rỗng (không nil).
// Hàm thuần, không chạm database.
func buildSalesSummaryData(month, year int, in monthlySummaryInputs, computedAt int64) bson.M {
	var averageOrderValue float64
	if in.NumberOfOrders > 0 {
		averageOrderValue = in.TotalRevenue / float64(in.NumberOfOrders)
	}

	if in.TopProducts == nil {
		in.TopProducts = []models.TopProduct{}
	}
	if in.TopCategories == nil {
		in.TopCategories = []models.TopCategory{}
	}
	if in.LowProducts == nil {
		in.LowProducts = []models.LowStockProduct{}
	}

	return bson.M{
		"month":             month,
		"year":              year,
		"totalProductsSold": in.TotalProductsSold,
		"totalRevenue":      in.TotalRevenue,
		"numberOfOrders":    in.NumberOfOrders,
		"averageOrderValue": averageOrderValue,
		"bestDay":           in.BestDay,
		"topProducts":       in.TopProducts,
		"topCategories":     in.TopCategories,
		"lowProducts":       in.LowProducts,
		"computedAt":        computedAt,
	}
}

// GetMonth đọc snapshot đã lưu của một tháng. Trả về common.ErrNotFound nếu chưa tính.
func (s *SalesSummaryService) GetMonth(ctx context.Context, month, year int) (models.SalesSummary, error) {
	var zero models.SalesSummary

	if err := ValidateMonthYear(month, year); err != nil {
		return zero, err
	}

	return s.snapshots.FindOne(ctx, bson.M{"month": month, "year": year}, options.FindOne())
}

// aggregateRevenue tính tổng doanh thu (sum finalAmount) và số đơn trong khoảng match
func (s *SalesSummaryService) aggregateRevenue(ctx context.Context, match bson.M) (float64, int64, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":            nil,
			"totalRevenue":   bson.M{"$sum": "$finalAmount"},
			"numberOfOrders": bson.M{"$sum": 1},
		}},
	}

	cursor, err := s.bills.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var result struct {
		TotalRevenue   float64 `bson:"totalRevenue"`
		NumberOfOrders int64   `bson:"numberOfOrders"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, 0, common.ConvertMongoError(err)
		}
	}

	return result.TotalRevenue, result.NumberOfOrders, nil
}

// aggregateUnitsSold tính tổng số sản phẩm đã bán ($unwind từng dòng hóa đơn)
func (s *SalesSummaryService) aggregateUnitsSold(ctx context.Context, match bson.M) (int64, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$unwind": "$products"},
		{"$group": bson.M{
			"_id":               nil,
			"totalProductsSold": bson.M{"$sum": "$products.quantity"},
		}},
	}

	cursor, err := s.bills.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var result struct {
		TotalProductsSold int64 `bson:"totalProductsSold"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, common.ConvertMongoError(err)
		}
	}

	return result.TotalProductsSold, nil
}

// aggregateBestDay tìm ngày có doanh thu cao nhất trong tháng.
// Group theo ngày địa phương bằng $dateToString với timezone cố định.
// Khi nhiều ngày bằng doanh thu, lấy ngày sớm nhất (sort phụ theo _id tăng dần).
// Trả về nil khi tháng không có đơn nào.
func (s *SalesSummaryService) aggregateBestDay(ctx context.Context, match bson.M) (*models.BestDay, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format":   "%Y-%m-%d",
				"date":     "$createdAt",
				"timezone": ReportTimezone,
			}},
			"totalRevenue":   bson.M{"$sum": "$finalAmount"},
			"numberOfOrders": bson.M{"$sum": 1},
		}},
		{"$sort": bson.D{{Key: "totalRevenue", Value: -1}, {Key: "_id", Value: 1}}},
		{"$limit": 1},
	}

	cursor, err := s.bills.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return nil, nil
	}

	var row struct {
		Date           string  `bson:"_id"`
		TotalRevenue   float64 `bson:"totalRevenue"`
		NumberOfOrders int64   `bson:"numberOfOrders"`
	}
	if err := cursor.Decode(&row); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return &models.BestDay{
		Date:           row.Date,
		TotalRevenue:   row.TotalRevenue,
		NumberOfOrders: row.NumberOfOrders,
	}, nil
}

// aggregateTopProducts lấy top 5 sản phẩm theo số lượng bán
func (s *SalesSummaryService) aggregateTopProducts(ctx context.Context, match bson.M) ([]models.TopProduct, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$unwind": "$products"},
		{"$group": bson.M{
			"_id":          "$products.product",
			"name":         bson.M{"$first": "$products.name"},
			"quantitySold": bson.M{"$sum": "$products.quantity"},
			"revenue":      bson.M{"$sum": "$products.totalPrice"},
		}},
		{"$sort": bson.D{{Key: "quantitySold", Value: -1}}},
		{"$limit": 5},
		{"$project": bson.M{
			"productId":    "$_id",
			"name":         1,
			"quantitySold": 1,
			"revenue":      1,
			"_id":          0,
		}},
	}

	cursor, err := s.bills.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []models.TopProduct{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return results, nil
}

// aggregateTopCategories lấy top 3 danh mục theo doanh thu.
// Phải lookup 2 lần: dòng hóa đơn -> product -> category.
func (s *SalesSummaryService) aggregateTopCategories(ctx context.Context, match bson.M) ([]models.TopCategory, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$unwind": "$products"},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Products,
			"localField":   "products.product",
			"foreignField": "_id",
			"as":           "productDetails",
		}},
		{"$unwind": "$productDetails"},
		{"$group": bson.M{
			"_id":           "$productDetails.category",
			"totalQuantity": bson.M{"$sum": "$products.quantity"},
			"totalRevenue":  bson.M{"$sum": "$products.totalPrice"},
		}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Categories,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "categoryDetails",
		}},
		{"$unwind": "$categoryDetails"},
		{"$sort": bson.D{{Key: "totalRevenue", Value: -1}}},
		{"$limit": 3},
		{"$project": bson.M{
			"categoryId":    "$_id",
			"name":          "$categoryDetails.name",
			"totalQuantity": 1,
			"totalRevenue":  1,
			"_id":           0,
		}},
	}

	cursor, err := s.bills.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []models.TopCategory{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return results, nil
}

// findLowStockProducts liệt kê sản phẩm có stockQuantity <= alertQuantity.
// Danh sách phản ánh tồn kho tại thời điểm tính, không gắn với chu kỳ báo cáo.
func (s *SalesSummaryService) findLowStockProducts(ctx context.Context) ([]models.LowStockProduct, error) {
	filter := bson.M{"$expr": bson.M{"$lte": bson.A{"$stockQuantity", "$alertQuantity"}}}
	opts := options.Find().SetProjection(bson.M{
		"_id":           1,
		"name":          1,
		"stockQuantity": 1,
		"alertQuantity": 1,
	})

	cursor, err := s.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var raw []struct {
		ProductID     primitive.ObjectID `bson:"_id"`
		Name          string             `bson:"name"`
		StockQuantity int64              `bson:"stockQuantity"`
		AlertQuantity int64              `bson:"alertQuantity"`
	}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	results := make([]models.LowStockProduct, 0, len(raw))
	for _, r := range raw {
		results = append(results, models.LowStockProduct{
			ProductID:     r.ProductID,
			Name:          r.Name,
			StockQuantity: r.StockQuantity,
			AlertQuantity: r.AlertQuantity,
		})
	}

	return results, nil
}
