package automation

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestExecuteActionsSortsByOrder(t *testing.T) {
	exec := &ActionExecutorImpl{logger: zap.NewNop()}
	auto := &Automation{
		Name: "ordered",
		Actions: []Action{
			{Type: ActionSendEmail, Order: 2, Config: map[string]interface{}{"to": "a@b.c"}},
			{Type: ActionHTTPRequest, Order: 1, Config: map[string]interface{}{"url": "http://x"}},
		},
	}

	executed, err := exec.ExecuteActions(context.Background(), auto)
	if err != nil {
		t.Fatalf("ExecuteActions() error = %v", err)
	}
	if len(executed) != 2 {
		t.Fatalf("executed %d actions, want 2", len(executed))
	}
	if executed[0].Type != ActionHTTPRequest || executed[1].Type != ActionSendEmail {
		t.Errorf("executed order = [%s, %s], want [http_request, send_email]", executed[0].Type, executed[1].Type)
	}
}

func TestExecuteActionsTiesKeepDeclarationOrder(t *testing.T) {
	exec := &ActionExecutorImpl{logger: zap.NewNop()}
	auto := &Automation{
		Name: "ties",
		Actions: []Action{
			{Type: ActionSendEmail, Order: 1, Config: map[string]interface{}{"to": "first"}},
			{Type: ActionSendEmail, Order: 1, Config: map[string]interface{}{"to": "second"}},
		},
	}

	executed, err := exec.ExecuteActions(context.Background(), auto)
	if err != nil {
		t.Fatalf("ExecuteActions() error = %v", err)
	}
	if executed[0].Config["to"] != "first" || executed[1].Config["to"] != "second" {
		t.Error("equal orders should preserve declaration position")
	}
}

func TestExecuteActionsUnknownTypeIsNoop(t *testing.T) {
	exec := &ActionExecutorImpl{logger: zap.NewNop()}
	auto := &Automation{
		Name: "noop",
		Actions: []Action{
			{Type: "", Order: 1},
			{Type: "teleport", Order: 2},
		},
	}

	executed, err := exec.ExecuteActions(context.Background(), auto)
	if err != nil {
		t.Fatalf("ExecuteActions() error = %v", err)
	}
	if len(executed) != 2 {
		t.Errorf("executed %d actions, want 2", len(executed))
	}
}

func TestExecuteActionsHonorsDelay(t *testing.T) {
	exec := &ActionExecutorImpl{logger: zap.NewNop(), delay: 10 * time.Millisecond}
	auto := &Automation{
		Name: "delayed",
		Actions: []Action{
			{Type: ActionSendEmail, Order: 1},
			{Type: ActionSendEmail, Order: 2},
			{Type: ActionSendEmail, Order: 3},
		},
	}

	start := time.Now()
	if _, err := exec.ExecuteActions(context.Background(), auto); err != nil {
		t.Fatalf("ExecuteActions() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("elapsed %v, want at least 30ms of simulated latency", elapsed)
	}
}

func TestExecuteActionsStopsOnCancelledContext(t *testing.T) {
	exec := &ActionExecutorImpl{logger: zap.NewNop(), delay: time.Second}
	auto := &Automation{
		Name: "cancelled",
		Actions: []Action{
			{Type: ActionSendEmail, Order: 1},
			{Type: ActionSendEmail, Order: 2},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executed, err := exec.ExecuteActions(ctx, auto)
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(executed) != 1 {
		t.Errorf("executed %d actions before cancel, want 1", len(executed))
	}
}
