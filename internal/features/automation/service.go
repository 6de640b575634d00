package automation

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// CreateRequest is the payload accepted when creating an automation.
// Only the name is required; everything else gets defaults.
type CreateRequest struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Triggers       []Trigger      `json:"triggers"`
	ConditionLogic ConditionLogic `json:"conditionLogic"`
	Conditions     []Condition    `json:"conditions"`
	Actions        []Action       `json:"actions"`
	Enabled        *bool          `json:"enabled"`
	CreatedBy      string         `json:"createdBy"`
}

// UpdateRequest is a partial update; nil fields keep their current value.
// The resulting record must keep at least one trigger and one action.
type UpdateRequest struct {
	Name           *string         `json:"name"`
	Description    *string         `json:"description"`
	Triggers       *[]Trigger      `json:"triggers"`
	ConditionLogic *ConditionLogic `json:"conditionLogic"`
	Conditions     *[]Condition    `json:"conditions"`
	Actions        *[]Action       `json:"actions"`
	Enabled        *bool           `json:"enabled"`
}

type AutomationService interface {
	Create(ctx context.Context, req *CreateRequest) (*Automation, error)
	Get(ctx context.Context, id string) (*Automation, error)
	List(ctx context.Context) ([]Automation, error)
	Update(ctx context.Context, id string, req *UpdateRequest) (*Automation, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, enabled bool) (*Automation, error)
	Test(ctx context.Context, id string, eventData map[string]interface{}) (*RunResult, error)
	RunLogs(ctx context.Context, id string, limit int) ([]RunLog, error)
	ExportToExcel(ctx context.Context) ([]byte, string, error)
}

type AutomationServiceImpl struct {
	Repo   AutomationRepository
	Engine Engine
	Logger *zap.Logger
}

func NewAutomationService(repo AutomationRepository, engine Engine, logger *zap.Logger) AutomationService {
	return &AutomationServiceImpl{
		Repo:   repo,
		Engine: engine,
		Logger: logger,
	}
}

func (s *AutomationServiceImpl) Create(ctx context.Context, req *CreateRequest) (*Automation, error) {
	if req.Name == "" {
		return nil, validationErrorf("automation name is required")
	}

	auto := &Automation{
		Name:           req.Name,
		Description:    req.Description,
		Triggers:       normalizeTriggers(req.Triggers),
		ConditionLogic: req.ConditionLogic,
		Conditions:     req.Conditions,
		Actions:        normalizeActions(req.Actions),
		Enabled:        true,
		CreatedBy:      req.CreatedBy,
	}
	if req.Enabled != nil {
		auto.Enabled = *req.Enabled
	}
	if auto.ConditionLogic == "" {
		auto.ConditionLogic = LogicAnd
	}

	if err := s.Repo.Create(ctx, auto); err != nil {
		return nil, err
	}

	s.Logger.Info("automation created",
		zap.String("automation", auto.Name),
		zap.String("id", auto.ID.Hex()))

	auto.SuccessRate = auto.ComputeSuccessRate()
	return auto, nil
}

func (s *AutomationServiceImpl) Get(ctx context.Context, id string) (*Automation, error) {
	auto, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if auto == nil {
		return nil, ErrNotFound
	}
	auto.SuccessRate = auto.ComputeSuccessRate()
	return auto, nil
}

func (s *AutomationServiceImpl) List(ctx context.Context) ([]Automation, error) {
	autos, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range autos {
		autos[i].SuccessRate = autos[i].ComputeSuccessRate()
	}
	return autos, nil
}

func (s *AutomationServiceImpl) Update(ctx context.Context, id string, req *UpdateRequest) (*Automation, error) {
	auto, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if auto == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		auto.Name = *req.Name
	}
	if req.Description != nil {
		auto.Description = *req.Description
	}
	if req.Triggers != nil {
		auto.Triggers = normalizeTriggers(*req.Triggers)
	}
	if req.ConditionLogic != nil {
		auto.ConditionLogic = *req.ConditionLogic
	}
	if req.Conditions != nil {
		auto.Conditions = *req.Conditions
	}
	if req.Actions != nil {
		auto.Actions = normalizeActions(*req.Actions)
	}
	if req.Enabled != nil {
		auto.Enabled = *req.Enabled
	}

	if auto.Name == "" {
		return nil, validationErrorf("automation name is required")
	}
	if len(auto.Triggers) == 0 {
		return nil, validationErrorf("automation must have at least one trigger when updating")
	}
	if len(auto.Actions) == 0 {
		return nil, validationErrorf("automation must have at least one action when updating")
	}

	if err := s.Repo.Update(ctx, auto); err != nil {
		return nil, err
	}

	auto.SuccessRate = auto.ComputeSuccessRate()
	return auto, nil
}

func (s *AutomationServiceImpl) Delete(ctx context.Context, id string) error {
	auto, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if auto == nil {
		return ErrNotFound
	}
	return s.Repo.Delete(ctx, id)
}

// SetStatus flips the enabled flag. An automation can only be toggled when it
// has a name, at least one trigger and at least one action.
func (s *AutomationServiceImpl) SetStatus(ctx context.Context, id string, enabled bool) (*Automation, error) {
	auto, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if auto == nil {
		return nil, ErrNotFound
	}

	if auto.Name == "" || len(auto.Triggers) == 0 || len(auto.Actions) == 0 {
		return nil, validationErrorf("cannot update status: automation must have a name, at least one trigger, and at least one action")
	}

	if err := s.Repo.SetEnabled(ctx, id, enabled); err != nil {
		return nil, err
	}

	auto.Enabled = enabled
	auto.SuccessRate = auto.ComputeSuccessRate()
	return auto, nil
}

// Test invokes the engine synchronously with event type "any", which matches
// every trigger.
func (s *AutomationServiceImpl) Test(ctx context.Context, id string, eventData map[string]interface{}) (*RunResult, error) {
	if eventData == nil {
		eventData = map[string]interface{}{}
	}
	return s.Engine.Run(ctx, id, string(TriggerAny), eventData)
}

func (s *AutomationServiceImpl) RunLogs(ctx context.Context, id string, limit int) ([]RunLog, error) {
	auto, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if auto == nil {
		return nil, ErrNotFound
	}
	if limit <= 0 {
		limit = 50
	}
	return s.Repo.GetRunLogs(ctx, id, limit)
}

// ExportToExcel writes all automations with their counters to an xlsx sheet.
func (s *AutomationServiceImpl) ExportToExcel(ctx context.Context) ([]byte, string, error) {
	autos, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Automations"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	columns := []string{"Name", "Description", "Enabled", "Triggers", "Actions", "Run Count", "Success Count", "Failure Count", "Success Rate", "Last Run", "Created At"}
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, auto := range autos {
		lastRun := ""
		if auto.LastRun != nil {
			lastRun = auto.LastRun.Format("2006-01-02 15:04:05")
		}
		values := []interface{}{
			auto.Name,
			auto.Description,
			auto.Enabled,
			len(auto.Triggers),
			len(auto.Actions),
			auto.RunCount,
			auto.SuccessCount,
			auto.FailureCount,
			auto.SuccessRate,
			lastRun,
			auto.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, val := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("automations_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func normalizeTriggers(triggers []Trigger) []Trigger {
	for i := range triggers {
		if triggers[i].Type == "" {
			triggers[i].Type = TriggerAny
		}
		if triggers[i].Config == nil {
			triggers[i].Config = map[string]interface{}{}
		}
	}
	return triggers
}

func normalizeActions(actions []Action) []Action {
	for i := range actions {
		if actions[i].Order == 0 {
			actions[i].Order = 1
		}
		if actions[i].Config == nil {
			actions[i].Config = map[string]interface{}{}
		}
	}
	return actions
}
