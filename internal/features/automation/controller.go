package automation

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AutomationController struct {
	Service AutomationService
}

func NewAutomationController(service AutomationService) *AutomationController {
	return &AutomationController{
		Service: service,
	}
}

type statusRequest struct {
	Status *bool `json:"status"`
}

type testRequest struct {
	EventData map[string]interface{} `json:"eventData"`
}

// Create godoc
// @Summary Create automation
// @Description Create a new automation
// @Tags automations
// @Accept json
// @Produce json
// @Param automation body CreateRequest true "Automation"
// @Success 201 {object} Automation
// @Failure 400 {object} map[string]interface{}
// @Router /api/automations [post]
func (ctrl *AutomationController) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	auto, err := ctrl.Service.Create(c.UserContext(), &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(auto)
}

// List godoc
// @Summary List automations
// @Description List all automations, newest first
// @Tags automations
// @Produce json
// @Success 200 {array} Automation
// @Router /api/automations [get]
func (ctrl *AutomationController) List(c *fiber.Ctx) error {
	autos, err := ctrl.Service.List(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(autos)
}

// Get godoc
// @Summary Get automation
// @Description Get an automation by ID
// @Tags automations
// @Produce json
// @Param id path string true "Automation ID"
// @Success 200 {object} Automation
// @Failure 404 {object} map[string]interface{}
// @Router /api/automations/{id} [get]
func (ctrl *AutomationController) Get(c *fiber.Ctx) error {
	auto, err := ctrl.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(auto)
}

// Update godoc
// @Summary Update automation
// @Description Partially update an automation; the result must keep at least one trigger and one action
// @Tags automations
// @Accept json
// @Produce json
// @Param id path string true "Automation ID"
// @Param automation body UpdateRequest true "Fields to update"
// @Success 200 {object} Automation
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/automations/{id} [put]
func (ctrl *AutomationController) Update(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	auto, err := ctrl.Service.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(auto)
}

// Delete godoc
// @Summary Delete automation
// @Description Delete an automation by ID
// @Tags automations
// @Param id path string true "Automation ID"
// @Success 204 {object} nil
// @Failure 404 {object} map[string]interface{}
// @Router /api/automations/{id} [delete]
func (ctrl *AutomationController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetStatus godoc
// @Summary Toggle automation status
// @Description Enable or disable an automation
// @Tags automations
// @Accept json
// @Produce json
// @Param id path string true "Automation ID"
// @Param status body statusRequest true "Status"
// @Success 200 {object} Automation
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/automations/{id}/status [patch]
func (ctrl *AutomationController) SetStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Status == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status is required"})
	}

	auto, err := ctrl.Service.SetStatus(c.UserContext(), c.Params("id"), *req.Status)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(auto)
}

// Test godoc
// @Summary Test automation
// @Description Synchronously run an automation with event type "any" and the supplied event data
// @Tags automations
// @Accept json
// @Produce json
// @Param id path string true "Automation ID"
// @Param event body testRequest true "Event data"
// @Success 200 {object} RunResult
// @Failure 404 {object} map[string]interface{}
// @Router /api/automations/{id}/test [post]
func (ctrl *AutomationController) Test(c *fiber.Ctx) error {
	var req testRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := ctrl.Service.Test(c.UserContext(), c.Params("id"), req.EventData)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(result)
}

// RunLogs godoc
// @Summary List automation runs
// @Description List recent run logs for an automation, newest first
// @Tags automations
// @Produce json
// @Param id path string true "Automation ID"
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {array} RunLog
// @Failure 404 {object} map[string]interface{}
// @Router /api/automations/{id}/runs [get]
func (ctrl *AutomationController) RunLogs(c *fiber.Ctx) error {
	logs, err := ctrl.Service.RunLogs(c.UserContext(), c.Params("id"), c.QueryInt("limit"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(logs)
}

// Export godoc
// @Summary Export automations
// @Description Download all automations with their counters as an xlsx file
// @Tags automations
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /api/automations/export [get]
func (ctrl *AutomationController) Export(c *fiber.Ctx) error {
	data, filename, err := ctrl.Service.ExportToExcel(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}

	c.Set("Content-Disposition", "attachment; filename="+filename)
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

func errorResponse(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Reason})
	case errors.Is(err, primitive.ErrInvalidHex):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
