package automation

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConditionLogic string

const (
	LogicAnd ConditionLogic = "AND"
	LogicOr  ConditionLogic = "OR"
)

type TriggerType string

const (
	TriggerAny      TriggerType = "any"
	TriggerSchedule TriggerType = "schedule"
)

type ConditionOperator string

const (
	OperatorEquals         ConditionOperator = "equals"
	OperatorNotEquals      ConditionOperator = "not_equals"
	OperatorContains       ConditionOperator = "contains"
	OperatorStartsWith     ConditionOperator = "starts_with"
	OperatorEndsWith       ConditionOperator = "ends_with"
	OperatorGreaterThan    ConditionOperator = "greater_than"
	OperatorLessThan       ConditionOperator = "less_than"
	OperatorGreaterOrEqual ConditionOperator = "greater_or_equal"
	OperatorLessOrEqual    ConditionOperator = "less_or_equal"
)

type ActionType string

const (
	ActionSendEmail   ActionType = "send_email"
	ActionHTTPRequest ActionType = "http_request"
)

// Trigger describes when an automation is eligible to run. Schedule triggers
// may carry a standard cron expression under config["cron"]; without one they
// fire on every scheduler tick.
type Trigger struct {
	Type   TriggerType            `json:"type" bson:"type"`
	Config map[string]interface{} `json:"config" bson:"config"`
}

// Condition is a single field comparison against incoming event data.
type Condition struct {
	Field    string            `json:"field" bson:"field"`
	Operator ConditionOperator `json:"operator" bson:"operator"`
	Value    interface{}       `json:"value" bson:"value"`
}

// Action is a unit of work performed when an automation runs. Order defines
// execution position; ties keep declaration order.
type Action struct {
	Type   ActionType             `json:"type,omitempty" bson:"type,omitempty"`
	Config map[string]interface{} `json:"config" bson:"config"`
	Order  int                    `json:"order" bson:"order"`
}

type Automation struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Triggers       []Trigger          `json:"triggers" bson:"triggers"`
	ConditionLogic ConditionLogic     `json:"conditionLogic" bson:"condition_logic"`
	Conditions     []Condition        `json:"conditions" bson:"conditions"`
	Actions        []Action           `json:"actions" bson:"actions"`
	Enabled        bool               `json:"enabled" bson:"enabled"`
	LastRun        *time.Time         `json:"lastRun,omitempty" bson:"last_run,omitempty"`
	RunCount       int64              `json:"runCount" bson:"run_count"`
	SuccessCount   int64              `json:"successCount" bson:"success_count"`
	FailureCount   int64              `json:"failureCount" bson:"failure_count"`
	SuccessRate    float64            `json:"successRate" bson:"-"`
	CreatedBy      string             `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updated_at"`
}

// ComputeSuccessRate returns successCount/runCount as a percentage rounded to
// two decimals, 0 when the automation has never run.
func (a *Automation) ComputeSuccessRate() float64 {
	if a.RunCount == 0 {
		return 0
	}
	rate := float64(a.SuccessCount) / float64(a.RunCount) * 100
	return math.Round(rate*100) / 100
}

// HasTrigger reports whether the automation carries a trigger matching the
// given event type. A trigger of type "any" matches every event.
func (a *Automation) HasTrigger(eventType string) bool {
	for _, t := range a.Triggers {
		if string(t.Type) == eventType || t.Type == TriggerAny {
			return true
		}
	}
	return false
}

// RunResult is the outcome of a single engine invocation.
type RunResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

// ExecutedAction records one dispatched action for observability.
type ExecutedAction struct {
	Type   ActionType             `json:"type" bson:"type"`
	Config map[string]interface{} `json:"config" bson:"config"`
}

// RunLog represents a single execution of an automation
type RunLog struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AutomationID   primitive.ObjectID `json:"automationId" bson:"automation_id"`
	AutomationName string             `json:"automationName" bson:"automation_name"`
	EventType      string             `json:"eventType" bson:"event_type"`
	StartTime      time.Time          `json:"startTime" bson:"start_time"`
	EndTime        time.Time          `json:"endTime" bson:"end_time"`
	Status         RunStatus          `json:"status" bson:"status"`
	Message        string             `json:"message" bson:"message"`
	Actions        []ExecutedAction   `json:"actions,omitempty" bson:"actions,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
}
