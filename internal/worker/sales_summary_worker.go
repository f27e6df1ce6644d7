package worker

import (
	"context"
	"time"

	analyticssvc "pos_insight/internal/api/analytics/service"
	"pos_insight/internal/logger"
)

// SalesSummaryWorker tự động tính lại tổng hợp doanh thu hàng ngày.
// Mỗi ngày vào giờ cấu hình (mặc định 00:05 theo ReportTimezone), worker tính lại
// snapshot của tất cả các tháng từ tháng 1 đến tháng hiện tại của năm hiện tại,
// một tháng lỗi không chặn các tháng còn lại.
type SalesSummaryWorker struct {
	salesService *analyticssvc.SalesSummaryService
	hour         int // Giờ chạy hàng ngày (0-23)
	minute       int // Phút chạy hàng ngày (0-59)
}

// NewSalesSummaryWorker tạo mới SalesSummaryWorker với lịch chạy hàng ngày
func NewSalesSummaryWorker(hour, minute int) (*SalesSummaryWorker, error) {
	salesService, err := analyticssvc.NewSalesSummaryService()
	if err != nil {
		return nil, err
	}
	if hour < 0 || hour > 23 {
		hour = 0
	}
	if minute < 0 || minute > 59 {
		minute = 5
	}
	return &SalesSummaryWorker{
		salesService: salesService,
		hour:         hour,
		minute:       minute,
	}, nil
}

// nextRun trả về thời điểm chạy kế tiếp sau now: hôm nay lúc hour:minute nếu chưa qua,
// ngược lại là ngày mai cùng giờ.
func nextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// monthsToRecompute liệt kê các tháng cần tính lại: từ tháng 1 đến tháng hiện tại
func monthsToRecompute(now time.Time) []int {
	currentMonth := int(now.Month())
	months := make([]int, 0, currentMonth)
	for m := 1; m <= currentMonth; m++ {
		months = append(months, m)
	}
	return months
}

// Start chạy worker: ngủ đến thời điểm chạy kế tiếp, tính lại các tháng của năm hiện tại,
// rồi lặp lại. Dừng khi ctx bị cancel.
func (w *SalesSummaryWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	loc, err := time.LoadLocation(analyticssvc.ReportTimezone)
	if err != nil {
		loc = time.UTC
	}

	log.WithFields(map[string]interface{}{
		"hour":     w.hour,
		"minute":   w.minute,
		"timezone": analyticssvc.ReportTimezone,
	}).Info("📊 [SALES_SUMMARY] Starting Sales Summary Worker...")

	for {
		now := time.Now().In(loc)
		next := nextRun(now, w.hour, w.minute)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Info("📊 [SALES_SUMMARY] Sales Summary Worker stopped")
			return
		case <-timer.C:
			w.recomputeCurrentYear(ctx, loc)
		}
	}
}

// recomputeCurrentYear tính lại snapshot các tháng 1..hiện tại của năm hiện tại.
// Có recover để panic không làm chết worker; tháng lỗi được log và bỏ qua.
func (w *SalesSummaryWorker) recomputeCurrentYear(ctx context.Context, loc *time.Location) {
	log := logger.GetAppLogger()

	defer func() {
		if r := recover(); r != nil {
			// Panic đi vào error logger riêng để dễ truy vết
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"panic": r,
			}).Error("📊 [SALES_SUMMARY] Panic khi tính lại summary, sẽ tiếp tục ở lần chạy tiếp theo")
		}
	}()

	now := time.Now().In(loc)
	year := now.Year()
	months := monthsToRecompute(now)

	processed := 0
	for _, month := range months {
		if _, err := w.salesService.ComputeMonth(ctx, month, year); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"month": month,
				"year":  year,
			}).Warn("📊 [SALES_SUMMARY] Tính summary thất bại, bỏ qua tháng này")
			continue
		}
		processed++
	}

	log.WithFields(map[string]interface{}{
		"processed": processed,
		"total":     len(months),
		"year":      year,
	}).Info("📊 [SALES_SUMMARY] Đã tính lại sales summary các tháng")
}
