package analyticshdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	analyticsdto "pos_insight/internal/api/analytics/dto"
	analyticssvc "pos_insight/internal/api/analytics/service"
	basehdl "pos_insight/internal/api/base/handler"
	"pos_insight/internal/common"
	"pos_insight/internal/global"
	"pos_insight/internal/logger"
)

// PerformanceHandler xử lý API hiệu suất sản phẩm theo tháng
type PerformanceHandler struct {
	PerformanceService *analyticssvc.ProductPerformanceService
}

// NewPerformanceHandler tạo mới PerformanceHandler
func NewPerformanceHandler() (*PerformanceHandler, error) {
	svc, err := analyticssvc.NewProductPerformanceService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductPerformanceService: %w", err)
	}
	return &PerformanceHandler{
		PerformanceService: svc,
	}, nil
}

// parseMonthYearParams đọc month/year từ path params (:month/:year)
func parseMonthYearParams(c fiber.Ctx) (month, year int, err error) {
	month, err = strconv.Atoi(c.Params("month"))
	if err != nil {
		return 0, 0, common.ErrInvalidPeriod
	}
	year, err = strconv.Atoi(c.Params("year"))
	if err != nil {
		return 0, 0, common.ErrInvalidPeriod
	}
	return month, year, nil
}

// HandleUpdatePerformance xử lý POST /product-analytics/update
// Body { month, year } optional: bỏ trống thì tính cho tháng hiện tại.
func (h *PerformanceHandler) HandleUpdatePerformance(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var body analyticsdto.PerformanceUpdateBody
		if len(c.Body()) > 0 {
			if err := c.Bind().Body(&body); err != nil {
				basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
				return nil
			}
		}

		month, year := analyticssvc.ResolvePeriod(body.Month, body.Year)

		result, err := h.PerformanceService.ComputeMonth(c.Context(), month, year)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Tính product performance thất bại")
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleUpdatePerformanceForPeriod xử lý POST /product-analytics/update/:month/:year
func (h *PerformanceHandler) HandleUpdatePerformanceForPeriod(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		month, year, err := parseMonthYearParams(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.PerformanceService.ComputeMonth(c.Context(), month, year)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Tính product performance thất bại")
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleGetMonthlyPerformance xử lý GET /product-analytics/monthly?month=5&year=2025
// Trả về snapshot kèm monthName, performanceScore và trends so với tháng trước.
func (h *PerformanceHandler) HandleGetMonthlyPerformance(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var q analyticsdto.MonthYearQuery
		if err := c.Bind().Query(&q); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidPeriod)
			return nil
		}
		if err := global.Validate.Struct(q); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidPeriod)
			return nil
		}

		view, err := h.PerformanceService.GetMonthlyView(c.Context(), q.Month, q.Year)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, view, nil)
		return nil
	})
}

// HandleGetPerformanceForPeriod xử lý GET /product-analytics/:month/:year
func (h *PerformanceHandler) HandleGetPerformanceForPeriod(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		month, year, err := parseMonthYearParams(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		view, err := h.PerformanceService.GetMonthlyView(c.Context(), month, year)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, view, nil)
		return nil
	})
}

// HandleGetCurrentPerformance xử lý GET /product-analytics/current
func (h *PerformanceHandler) HandleGetCurrentPerformance(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		view, err := h.PerformanceService.GetCurrentView(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, view, nil)
		return nil
	})
}

// HandleGetPreviousPerformance xử lý GET /product-analytics/previous
func (h *PerformanceHandler) HandleGetPreviousPerformance(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		view, err := h.PerformanceService.GetPreviousView(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, view, nil)
		return nil
	})
}

// HandleComparePerformance xử lý GET /product-analytics/compare?startMonth=4&startYear=2025&endMonth=5&endYear=2025
func (h *PerformanceHandler) HandleComparePerformance(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var q analyticsdto.ComparisonQuery
		if err := c.Bind().Query(&q); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidPeriod)
			return nil
		}
		if err := global.Validate.Struct(q); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidPeriod)
			return nil
		}

		result, err := h.PerformanceService.Compare(c.Context(), q)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}
