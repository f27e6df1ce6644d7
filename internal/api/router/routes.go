// Package router thiết lập route cho toàn ứng dụng.
package router

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "pos_insight/internal/api/base/handler"
)

// APIPrefix là prefix chung của các route nghiệp vụ
const APIPrefix = "/api/v2"

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export)
type RegisterFunc func(v2 fiber.Router) error

// SetupRoutes thiết lập health check và các route nghiệp vụ.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	// Health check nằm ngoài prefix API, không qua rate limit
	app.Get("/health", func(c fiber.Ctx) error {
		return basehdl.JSONResponse(c, fiber.StatusOK, fiber.Map{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	v2 := app.Group(APIPrefix)
	for _, reg := range regs {
		if err := reg(v2); err != nil {
			return err
		}
	}
	return nil
}
