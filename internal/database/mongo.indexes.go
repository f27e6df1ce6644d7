package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pos_insight/internal/global"
	"pos_insight/internal/logger"
)

// indexSpec mô tả một index cần đảm bảo tồn tại trên một collection
type indexSpec struct {
	Collection string
	Keys       bson.D
	Unique     bool
}

// EnsureIndexes tạo các indexes cần thiết cho các collection snapshot và bills.
// Các snapshot được upsert theo khóa chu kỳ nên cần unique index trên khóa đó.
func EnsureIndexes(db *mongo.Database, colNames global.MongoDB_CollectionName) error {
	specs := []indexSpec{
		// Khóa chu kỳ của snapshot: mỗi (tháng, năm) chỉ có một bản ghi
		{Collection: colNames.SalesSummaries, Keys: bson.D{{Key: "month", Value: 1}, {Key: "year", Value: 1}}, Unique: true},
		{Collection: colNames.ProductPerformances, Keys: bson.D{{Key: "month", Value: 1}, {Key: "year", Value: 1}}, Unique: true},
		{Collection: colNames.YearlySalesSummaries, Keys: bson.D{{Key: "year", Value: 1}}, Unique: true},
		// Bills được quét theo khoảng thời gian tạo
		{Collection: colNames.Bills, Keys: bson.D{{Key: "createdAt", Value: 1}}, Unique: false},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, spec := range specs {
		model := mongo.IndexModel{
			Keys:    spec.Keys,
			Options: options.Index().SetUnique(spec.Unique),
		}

		if _, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", spec.Collection, err)
		}

		logger.GetAppLogger().WithFields(map[string]interface{}{
			"collection": spec.Collection,
			"unique":     spec.Unique,
		}).Debug("Index ensured")
	}

	return nil
}
