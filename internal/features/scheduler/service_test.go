package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"autoflow/internal/features/automation"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func scheduleAutomation(cron string) *automation.Automation {
	config := map[string]interface{}{}
	if cron != "" {
		config["cron"] = cron
	}
	return &automation.Automation{
		ID:       primitive.NewObjectID(),
		Name:     "nightly",
		Enabled:  true,
		Triggers: []automation.Trigger{{Type: automation.TriggerSchedule, Config: config}},
		Actions:  []automation.Action{{Type: automation.ActionSendEmail, Order: 1}},
	}
}

func TestScheduleDue(t *testing.T) {
	halfPast := time.Date(2024, 5, 1, 10, 30, 12, 0, time.UTC)
	onTheHour := time.Date(2024, 5, 1, 10, 0, 12, 0, time.UTC)

	tests := []struct {
		name string
		auto *automation.Automation
		now  time.Time
		want bool
	}{
		{
			name: "No cron expression fires every tick",
			auto: scheduleAutomation(""),
			now:  halfPast,
			want: true,
		},
		{
			name: "Every minute expression",
			auto: scheduleAutomation("* * * * *"),
			now:  halfPast,
			want: true,
		},
		{
			name: "Hourly expression off the hour",
			auto: scheduleAutomation("0 * * * *"),
			now:  halfPast,
			want: false,
		},
		{
			name: "Hourly expression on the hour",
			auto: scheduleAutomation("0 * * * *"),
			now:  onTheHour,
			want: true,
		},
		{
			name: "Invalid expression falls back to every tick",
			auto: scheduleAutomation("not a cron"),
			now:  halfPast,
			want: true,
		},
		{
			name: "No schedule trigger is never due",
			auto: &automation.Automation{
				Triggers: []automation.Trigger{{Type: automation.TriggerAny}},
			},
			now:  halfPast,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scheduleDue(tt.auto, tt.now); got != tt.want {
				t.Errorf("scheduleDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

// stubRepo serves a fixed scheduled batch; nothing else is exercised by the
// scheduler.
type stubRepo struct {
	automation.AutomationRepository
	scheduled []automation.Automation
}

func (r *stubRepo) ListScheduled(ctx context.Context) ([]automation.Automation, error) {
	return r.scheduled, nil
}

type stubEngine struct {
	mu     sync.Mutex
	calls  []string
	failOn string
}

func (e *stubEngine) Run(ctx context.Context, id string, eventType string, eventData map[string]interface{}) (*automation.RunResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, id)
	if id == e.failOn {
		return nil, errors.New("store unreachable")
	}
	return &automation.RunResult{Success: true}, nil
}

func TestTickRunsAllDueAutomations(t *testing.T) {
	first := scheduleAutomation("")
	second := scheduleAutomation("")
	repo := &stubRepo{scheduled: []automation.Automation{*first, *second}}
	engine := &stubEngine{failOn: first.ID.Hex()}

	svc := &SchedulerServiceImpl{repo: repo, engine: engine, logger: zap.NewNop()}
	svc.tick(context.Background(), time.Now())

	if len(engine.calls) != 2 {
		t.Fatalf("engine invoked %d times, want 2; one failure must not abort the batch", len(engine.calls))
	}
	if engine.calls[1] != second.ID.Hex() {
		t.Error("second automation should still run after the first fails")
	}
}

func TestTickSkipsNotDueAutomations(t *testing.T) {
	hourly := scheduleAutomation("0 * * * *")
	repo := &stubRepo{scheduled: []automation.Automation{*hourly}}
	engine := &stubEngine{}

	svc := &SchedulerServiceImpl{repo: repo, engine: engine, logger: zap.NewNop()}
	svc.tick(context.Background(), time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC))

	if len(engine.calls) != 0 {
		t.Errorf("engine invoked %d times, want 0 for a not-due cron", len(engine.calls))
	}
}

func TestTickUsesScheduleEventType(t *testing.T) {
	auto := scheduleAutomation("")
	repo := &stubRepo{scheduled: []automation.Automation{*auto}}

	var gotEventType string
	engine := engineFunc(func(ctx context.Context, id, eventType string, eventData map[string]interface{}) (*automation.RunResult, error) {
		gotEventType = eventType
		return &automation.RunResult{Success: true}, nil
	})

	svc := &SchedulerServiceImpl{repo: repo, engine: engine, logger: zap.NewNop()}
	svc.tick(context.Background(), time.Now())

	if gotEventType != string(automation.TriggerSchedule) {
		t.Errorf("event type = %q, want schedule", gotEventType)
	}
}

type engineFunc func(ctx context.Context, id, eventType string, eventData map[string]interface{}) (*automation.RunResult, error)

func (f engineFunc) Run(ctx context.Context, id string, eventType string, eventData map[string]interface{}) (*automation.RunResult, error) {
	return f(ctx, id, eventType, eventData)
}
