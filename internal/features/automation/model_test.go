package automation

import "testing"

func TestComputeSuccessRate(t *testing.T) {
	tests := []struct {
		name         string
		runCount     int64
		successCount int64
		want         float64
	}{
		{name: "Never run", runCount: 0, successCount: 0, want: 0},
		{name: "Three of four", runCount: 4, successCount: 3, want: 75.00},
		{name: "All successful", runCount: 5, successCount: 5, want: 100},
		{name: "One of three rounds to two decimals", runCount: 3, successCount: 1, want: 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auto := &Automation{RunCount: tt.runCount, SuccessCount: tt.successCount}
			if got := auto.ComputeSuccessRate(); got != tt.want {
				t.Errorf("ComputeSuccessRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasTrigger(t *testing.T) {
	auto := &Automation{Triggers: []Trigger{{Type: TriggerSchedule}}}

	if !auto.HasTrigger("schedule") {
		t.Error("schedule trigger should match schedule events")
	}
	if auto.HasTrigger("record_created") {
		t.Error("schedule trigger should not match other events")
	}

	auto.Triggers = append(auto.Triggers, Trigger{Type: TriggerAny})
	if !auto.HasTrigger("record_created") {
		t.Error("an any trigger matches every event")
	}
}
