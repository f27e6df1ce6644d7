// Package analyticshdl chứa HTTP handler cho domain Analytics.
package analyticshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticsdto "pos_insight/internal/api/analytics/dto"
	analyticssvc "pos_insight/internal/api/analytics/service"
	basehdl "pos_insight/internal/api/base/handler"
	"pos_insight/internal/common"
	"pos_insight/internal/global"
	"pos_insight/internal/logger"
)

// SalesSummaryHandler xử lý API tổng hợp doanh thu theo tháng và theo năm
type SalesSummaryHandler struct {
	SalesService  *analyticssvc.SalesSummaryService
	YearlyService *analyticssvc.YearlySummaryService
}

// NewSalesSummaryHandler tạo mới SalesSummaryHandler
func NewSalesSummaryHandler() (*SalesSummaryHandler, error) {
	salesSvc, err := analyticssvc.NewSalesSummaryService()
	if err != nil {
		return nil, fmt.Errorf("tạo SalesSummaryService: %w", err)
	}
	yearlySvc, err := analyticssvc.NewYearlySummaryService()
	if err != nil {
		return nil, fmt.Errorf("tạo YearlySummaryService: %w", err)
	}
	return &SalesSummaryHandler{
		SalesService:  salesSvc,
		YearlyService: yearlySvc,
	}, nil
}

// bindMonthYearQuery bind và validate month/year từ query string
func bindMonthYearQuery(c fiber.Ctx) (analyticsdto.MonthYearQuery, error) {
	var q analyticsdto.MonthYearQuery
	if err := c.Bind().Query(&q); err != nil {
		return q, common.ErrInvalidPeriod
	}
	if err := global.Validate.Struct(q); err != nil {
		return q, common.ErrInvalidPeriod
	}
	return q, nil
}

// bindYearQuery bind và validate year từ query string
func bindYearQuery(c fiber.Ctx) (analyticsdto.YearQuery, error) {
	var q analyticsdto.YearQuery
	if err := c.Bind().Query(&q); err != nil {
		return q, common.ErrInvalidPeriod
	}
	if err := global.Validate.Struct(q); err != nil {
		return q, common.ErrInvalidPeriod
	}
	return q, nil
}

// HandleUpdateSalesSummary xử lý POST /sales-summary/update?month=6&year=2025
// Tính lại toàn bộ số liệu tổng hợp của tháng và upsert snapshot.
// Bỏ trống month/year thì tính cho tháng hiện tại.
func (h *SalesSummaryHandler) HandleUpdateSalesSummary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var q analyticsdto.MonthYearUpdateQuery
		if err := c.Bind().Query(&q); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidPeriod)
			return nil
		}
		if err := global.Validate.Struct(q); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidPeriod)
			return nil
		}

		month, year := analyticssvc.ResolvePeriod(q.Month, q.Year)

		summary, err := h.SalesService.ComputeMonth(c.Context(), month, year)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Tính sales summary thất bại")
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, summary, nil)
		return nil
	})
}

// HandleGetSalesSummary xử lý GET /sales-summary/get?month=6&year=2025
// Chỉ đọc snapshot đã lưu, không tính lại.
func (h *SalesSummaryHandler) HandleGetSalesSummary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		q, err := bindMonthYearQuery(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		summary, err := h.SalesService.GetMonth(c.Context(), q.Month, q.Year)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, summary, nil)
		return nil
	})
}

// HandleUpdateYearlySummary xử lý POST /yearly-sales-summary/update?year=2025
func (h *SalesSummaryHandler) HandleUpdateYearlySummary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		q, err := bindYearQuery(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		yearly, err := h.YearlyService.ComputeYear(c.Context(), q.Year)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Tính yearly sales summary thất bại")
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, yearly, nil)
		return nil
	})
}

// HandleGetYearlySummary xử lý GET /yearly-sales-summary/get?year=2025
func (h *SalesSummaryHandler) HandleGetYearlySummary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		q, err := bindYearQuery(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		yearly, err := h.YearlyService.GetYear(c.Context(), q.Year)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, yearly, nil)
		return nil
	})
}
