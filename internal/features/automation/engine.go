package automation

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunPolicy decides how an engine invocation treats automations whose
// enabled flag or triggers do not match the incoming event.
type RunPolicy string

const (
	// PolicyAlwaysCount records every invocation attempt against the
	// automation's counters. Trigger-type gating is the caller's job
	// (the scheduler filters by schedule trigger, manual tests use "any").
	PolicyAlwaysCount RunPolicy = "always_count"

	// PolicyGateOnTrigger skips disabled automations and events without a
	// matching trigger before any counter is touched.
	PolicyGateOnTrigger RunPolicy = "gate_on_trigger"
)

const DefaultRunPolicy = PolicyAlwaysCount

const (
	MessageConditionsNotMet = "Conditions not met"
	MessageExecuted         = "Automation executed successfully"
	MessageSkipped          = "Automation skipped"
)

// RunPublisher receives the outcome of every completed engine invocation.
type RunPublisher interface {
	PublishRun(log *RunLog)
}

// Engine is the single entry point for running an automation against an
// event. Conditions-not-met and execution failures are captured as failed
// results; only a missing automation or an unreadable store escapes as error.
type Engine interface {
	Run(ctx context.Context, id string, eventType string, eventData map[string]interface{}) (*RunResult, error)
}

type EngineImpl struct {
	repo      AutomationRepository
	executor  ActionExecutor
	publisher RunPublisher
	logger    *zap.Logger
	policy    RunPolicy
}

func NewEngine(repo AutomationRepository, executor ActionExecutor, publisher RunPublisher, logger *zap.Logger) Engine {
	return &EngineImpl{
		repo:      repo,
		executor:  executor,
		publisher: publisher,
		logger:    logger,
		policy:    DefaultRunPolicy,
	}
}

func (e *EngineImpl) Run(ctx context.Context, id string, eventType string, eventData map[string]interface{}) (*RunResult, error) {
	auto, err := e.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if auto == nil {
		return nil, ErrNotFound
	}

	if e.policy == PolicyGateOnTrigger {
		if !auto.Enabled || !auto.HasTrigger(eventType) {
			return &RunResult{Success: false, Message: MessageSkipped}, nil
		}
	}

	started := time.Now()
	e.logger.Info("running automation",
		zap.String("automation", auto.Name),
		zap.String("event_type", eventType),
		zap.Any("event_data", eventData))

	if err := e.repo.MarkRun(ctx, auto.ID, started); err != nil {
		return e.finish(ctx, auto, eventType, started, nil, false, err.Error())
	}

	if !EvaluateConditions(auto.Conditions, auto.ConditionLogic, eventData) {
		return e.finish(ctx, auto, eventType, started, nil, false, MessageConditionsNotMet)
	}

	executed, err := e.executor.ExecuteActions(ctx, auto)
	if err != nil {
		e.logger.Error("automation execution failed",
			zap.String("automation", auto.Name),
			zap.Error(err))
		return e.finish(ctx, auto, eventType, started, executed, false, err.Error())
	}

	return e.finish(ctx, auto, eventType, started, executed, true, MessageExecuted)
}

func (e *EngineImpl) finish(ctx context.Context, auto *Automation, eventType string, started time.Time, executed []ExecutedAction, success bool, message string) (*RunResult, error) {
	var err error
	status := RunStatusFailed
	if success {
		status = RunStatusSuccess
		err = e.repo.MarkSuccess(ctx, auto.ID)
	} else {
		err = e.repo.MarkFailure(ctx, auto.ID)
	}
	if err != nil {
		e.logger.Error("failed to persist run counters",
			zap.String("automation", auto.Name),
			zap.Error(err))
	}

	runLog := &RunLog{
		AutomationID:   auto.ID,
		AutomationName: auto.Name,
		EventType:      eventType,
		StartTime:      started,
		EndTime:        time.Now(),
		Status:         status,
		Message:        message,
		Actions:        executed,
	}
	if err := e.repo.CreateRunLog(ctx, runLog); err != nil {
		e.logger.Error("failed to persist run log",
			zap.String("automation", auto.Name),
			zap.Error(err))
	}

	if e.publisher != nil {
		e.publisher.PublishRun(runLog)
	}

	return &RunResult{Success: success, Message: message}, nil
}
