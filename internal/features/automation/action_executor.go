package automation

import (
	"context"
	"sort"
	"time"

	"autoflow/internal/config"

	"go.uber.org/zap"
)

// ActionExecutor dispatches an automation's actions in order. Email and HTTP
// actions are simulated: their configuration is logged, nothing is delivered.
type ActionExecutor interface {
	ExecuteActions(ctx context.Context, auto *Automation) ([]ExecutedAction, error)
}

type ActionExecutorImpl struct {
	logger *zap.Logger
	delay  time.Duration
}

func NewActionExecutor(cfg *config.Config, logger *zap.Logger) ActionExecutor {
	return &ActionExecutorImpl{
		logger: logger,
		delay:  cfg.ActionDelay,
	}
}

// ExecuteActions runs the actions sorted by ascending order (ties keep
// declaration position) with a fixed delay after each one, emulating real
// asynchronous work. The delay honors context cancellation.
func (e *ActionExecutorImpl) ExecuteActions(ctx context.Context, auto *Automation) ([]ExecutedAction, error) {
	actions := make([]Action, len(auto.Actions))
	copy(actions, auto.Actions)
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Order < actions[j].Order
	})

	executed := make([]ExecutedAction, 0, len(actions))
	for _, action := range actions {
		switch action.Type {
		case ActionSendEmail:
			e.logger.Info("sending email",
				zap.String("automation", auto.Name),
				zap.Any("config", action.Config))
		case ActionHTTPRequest:
			e.logger.Info("sending http request",
				zap.String("automation", auto.Name),
				zap.Any("config", action.Config))
		default:
			// Unset or unknown action types are a no-op, not an error.
		}

		executed = append(executed, ExecutedAction{Type: action.Type, Config: action.Config})

		if err := e.wait(ctx); err != nil {
			return executed, err
		}
	}

	return executed, nil
}

func (e *ActionExecutorImpl) wait(ctx context.Context) error {
	if e.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(e.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
