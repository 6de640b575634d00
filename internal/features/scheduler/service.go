package scheduler

import (
	"context"
	"fmt"
	"time"

	"autoflow/internal/features/automation"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SchedulerService fires once per minute and runs every enabled automation
// carrying a schedule trigger that is due for the current minute.
type SchedulerService interface {
	Start(ctx context.Context) error
	Stop() error
}

type SchedulerServiceImpl struct {
	repo   automation.AutomationRepository
	engine automation.Engine
	logger *zap.Logger

	runner *cron.Cron
}

func NewSchedulerService(repo automation.AutomationRepository, engine automation.Engine, logger *zap.Logger) SchedulerService {
	return &SchedulerServiceImpl{
		repo:   repo,
		engine: engine,
		logger: logger,
	}
}

func (s *SchedulerServiceImpl) Start(ctx context.Context) error {
	if s.runner != nil {
		return fmt.Errorf("scheduler already started")
	}

	s.runner = cron.New()
	if _, err := s.runner.AddFunc("* * * * *", func() {
		s.tick(context.Background(), time.Now())
	}); err != nil {
		return fmt.Errorf("failed to register scheduler tick: %w", err)
	}

	s.runner.Start()
	s.logger.Info("scheduler started")
	return nil
}

func (s *SchedulerServiceImpl) Stop() error {
	if s.runner != nil {
		<-s.runner.Stop().Done()
		s.logger.Info("scheduler stopped")
	}
	return nil
}

// tick loads all enabled automations with a schedule trigger and runs the due
// ones. One automation's failure never blocks the rest of the batch.
func (s *SchedulerServiceImpl) tick(ctx context.Context, now time.Time) {
	autos, err := s.repo.ListScheduled(ctx)
	if err != nil {
		s.logger.Error("failed to load scheduled automations", zap.Error(err))
		return
	}

	for i := range autos {
		auto := &autos[i]
		if !scheduleDue(auto, now) {
			continue
		}

		result, err := s.engine.Run(ctx, auto.ID.Hex(), string(automation.TriggerSchedule), map[string]interface{}{})
		if err != nil {
			s.logger.Error("scheduled automation failed",
				zap.String("automation", auto.Name),
				zap.Error(err))
			continue
		}
		if !result.Success {
			s.logger.Warn("scheduled automation did not succeed",
				zap.String("automation", auto.Name),
				zap.String("message", result.Message))
		}
	}
}

// scheduleDue reports whether any schedule trigger fires within the minute
// containing now. A trigger without a parseable cron expression fires on
// every tick.
func scheduleDue(auto *automation.Automation, now time.Time) bool {
	minute := now.Truncate(time.Minute)
	for _, t := range auto.Triggers {
		if t.Type != automation.TriggerSchedule {
			continue
		}

		expr, _ := t.Config["cron"].(string)
		if expr == "" {
			return true
		}

		schedule, err := cron.ParseStandard(expr)
		if err != nil {
			return true
		}

		// Cron activations land on whole minutes; due when the next
		// activation after the previous minute is this one.
		next := schedule.Next(minute.Add(-time.Second))
		if !next.After(minute) {
			return true
		}
	}
	return false
}
