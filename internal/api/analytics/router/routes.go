// Package router đăng ký các route thuộc domain Analytics:
// tổng hợp doanh thu tháng/năm và hiệu suất sản phẩm.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "pos_insight/internal/api/analytics/handler"
)

// Register đăng ký tất cả route analytics lên group v2
func Register(v2 fiber.Router) error {
	salesHandler, err := analyticshdl.NewSalesSummaryHandler()
	if err != nil {
		return fmt.Errorf("create sales summary handler: %w", err)
	}
	perfHandler, err := analyticshdl.NewPerformanceHandler()
	if err != nil {
		return fmt.Errorf("create performance handler: %w", err)
	}

	sales := v2.Group("/sales-summary")
	sales.Post("/update", salesHandler.HandleUpdateSalesSummary)
	sales.Get("/get", salesHandler.HandleGetSalesSummary)

	yearly := v2.Group("/yearly-sales-summary")
	yearly.Post("/update", salesHandler.HandleUpdateYearlySummary)
	yearly.Get("/get", salesHandler.HandleGetYearlySummary)

	perf := v2.Group("/product-analytics")
	perf.Post("/update", perfHandler.HandleUpdatePerformance)
	perf.Post("/update/:month/:year", perfHandler.HandleUpdatePerformanceForPeriod)
	perf.Get("/monthly", perfHandler.HandleGetMonthlyPerformance)
	perf.Get("/compare", perfHandler.HandleComparePerformance)
	perf.Get("/current", perfHandler.HandleGetCurrentPerformance)
	perf.Get("/previous", perfHandler.HandleGetPreviousPerformance)
	// Route param đặt cuối để không che các route tĩnh phía trên
	perf.Get("/:month/:year", perfHandler.HandleGetPerformanceForPeriod)

	return nil
}
