package automation

import (
	"autoflow/internal/common/api"
	"autoflow/internal/config"
	"autoflow/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AutomationApi struct {
	controller *AutomationController
	config     *config.Config
}

func NewAutomationApi(controller *AutomationController, config *config.Config) api.Route {
	return &AutomationApi{
		controller: controller,
		config:     config,
	}
}

func (h *AutomationApi) Setup(app *fiber.App) {
	group := app.Group("/api/automations", middleware.AuthMiddleware(h.config.SkipAuth))

	group.Get("/", h.controller.List)
	group.Get("/export", h.controller.Export)
	group.Get("/:id", h.controller.Get)
	group.Post("/", h.controller.Create)
	group.Put("/:id", h.controller.Update)
	group.Delete("/:id", h.controller.Delete)
	group.Patch("/:id/status", h.controller.SetStatus)
	group.Post("/:id/test", h.controller.Test)
	group.Get("/:id/runs", h.controller.RunLogs)
}
