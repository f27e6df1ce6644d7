package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"pos_insight/internal/database"
	"pos_insight/internal/global"
	"pos_insight/internal/logger"
	"pos_insight/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	log := logger.GetAppLogger()

	log.WithFields(map[string]interface{}{
		"address":  cfg.Address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Đóng kết nối MongoDB khi server dừng
	defer func() {
		if err := database.CloseInstance(global.MongoDB_Session); err != nil {
			logger.WithError(err).Error("Error closing MongoDB connection")
		}
	}()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo và chạy Sales Summary Worker (background worker tính lại snapshot hàng ngày)
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig
	if cfg.SummaryWorker_Enabled {
		summaryWorker, err := worker.NewSalesSummaryWorker(cfg.SummaryWorker_Hour, cfg.SummaryWorker_Minute)
		if err != nil {
			logger.WithError(err).Error("Failed to create sales summary worker, continuing without summary worker")
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			// Chạy worker trong goroutine riêng với recover
			go func() {
				defer func() {
					if r := recover(); r != nil {
						logger.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📊 [SALES_SUMMARY] Worker goroutine panic")
					}
				}()

				summaryWorker.Start(ctx)
				log.Warn("📊 [SALES_SUMMARY] Worker đã dừng (có thể do context cancelled)")
			}()

			log.Info("📊 [SALES_SUMMARY] Sales Summary Worker started successfully")
		}
	} else {
		log.Info("📊 [SALES_SUMMARY] Sales Summary Worker disabled by config")
	}

	// Chạy Fiber server trên main thread
	main_thread()
}
