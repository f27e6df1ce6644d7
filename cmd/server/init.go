package main

import (
	"github.com/sirupsen/logrus"

	"pos_insight/config"
	"pos_insight/internal/database"
	"pos_insight/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Dữ liệu nguồn (do hệ thống bán hàng ghi)
	global.MongoDB_ColNames.Bills = "bills"
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Categories = "categories"

	// Snapshot tổng hợp (do module analytics ghi)
	global.MongoDB_ColNames.SalesSummaries = "sales_summaries"
	global.MongoDB_ColNames.YearlySalesSummaries = "yearly_sales_summaries"
	global.MongoDB_ColNames.ProductPerformances = "product_performances"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: sane_year, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các index cho các collection snapshot và bills
	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName_Data)
	if err := database.EnsureIndexes(db, global.MongoDB_ColNames); err != nil {
		logrus.Fatalf("Failed to ensure indexes: %v", err)
	}
	logrus.Info("Ensured collection indexes")
}
