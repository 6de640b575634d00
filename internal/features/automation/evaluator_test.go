package automation

import "testing"

func TestEvaluateConditions(t *testing.T) {
	tests := []struct {
		name       string
		conditions []Condition
		logic      ConditionLogic
		eventData  map[string]interface{}
		want       bool
	}{
		{
			name:       "Empty condition list is always true",
			conditions: nil,
			logic:      LogicAnd,
			eventData:  map[string]interface{}{"anything": 1},
			want:       true,
		},
		{
			name:       "Empty condition list with OR logic",
			conditions: []Condition{},
			logic:      LogicOr,
			eventData:  nil,
			want:       true,
		},
		{
			name: "Greater than matches",
			conditions: []Condition{
				{Field: "age", Operator: OperatorGreaterThan, Value: 18},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"age": 20},
			want:      true,
		},
		{
			name: "Greater than fails",
			conditions: []Condition{
				{Field: "age", Operator: OperatorGreaterThan, Value: 18},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"age": 15},
			want:      false,
		},
		{
			name: "JSON decoded float compares against int value",
			conditions: []Condition{
				{Field: "age", Operator: OperatorGreaterOrEqual, Value: 18},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"age": float64(18)},
			want:      true,
		},
		{
			name: "Equals is type sensitive for strings vs numbers",
			conditions: []Condition{
				{Field: "code", Operator: OperatorEquals, Value: 123},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"code": "123"},
			want:      false,
		},
		{
			name: "Equals normalizes numeric kinds",
			conditions: []Condition{
				{Field: "code", Operator: OperatorEquals, Value: 123},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"code": float64(123)},
			want:      true,
		},
		{
			name: "Not equals on absent field is true",
			conditions: []Condition{
				{Field: "missing", Operator: OperatorNotEquals, Value: "x"},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{},
			want:      true,
		},
		{
			name: "Equals on absent field is false",
			conditions: []Condition{
				{Field: "missing", Operator: OperatorEquals, Value: "x"},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{},
			want:      false,
		},
		{
			name: "Contains stringifies the field value",
			conditions: []Condition{
				{Field: "num", Operator: OperatorContains, Value: "2"},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"num": 123},
			want:      true,
		},
		{
			name: "Starts with",
			conditions: []Condition{
				{Field: "email", Operator: OperatorStartsWith, Value: "admin"},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"email": "admin@example.com"},
			want:      true,
		},
		{
			name: "Ends with",
			conditions: []Condition{
				{Field: "email", Operator: OperatorEndsWith, Value: "@example.com"},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"email": "admin@example.com"},
			want:      true,
		},
		{
			name: "String ordering is lexical",
			conditions: []Condition{
				{Field: "name", Operator: OperatorLessThan, Value: "b"},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"name": "a"},
			want:      true,
		},
		{
			name: "Mixed type ordering does not compare",
			conditions: []Condition{
				{Field: "age", Operator: OperatorGreaterThan, Value: "18"},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"age": 20},
			want:      false,
		},
		{
			name: "Unknown operator fails closed",
			conditions: []Condition{
				{Field: "x", Operator: "bogus", Value: 1},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"x": 1},
			want:      false,
		},
		{
			name: "AND requires every condition",
			conditions: []Condition{
				{Field: "age", Operator: OperatorGreaterThan, Value: 18},
				{Field: "status", Operator: OperatorEquals, Value: "active"},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"age": 20, "status": "inactive"},
			want:      false,
		},
		{
			name: "OR requires at least one condition",
			conditions: []Condition{
				{Field: "age", Operator: OperatorGreaterThan, Value: 18},
				{Field: "status", Operator: OperatorEquals, Value: "active"},
			},
			logic:     LogicOr,
			eventData: map[string]interface{}{"age": 20, "status": "inactive"},
			want:      true,
		},
		{
			name: "OR with no matching condition",
			conditions: []Condition{
				{Field: "age", Operator: OperatorGreaterThan, Value: 18},
				{Field: "status", Operator: OperatorEquals, Value: "active"},
			},
			logic:     LogicOr,
			eventData: map[string]interface{}{"age": 10, "status": "inactive"},
			want:      false,
		},
		{
			name: "Less or equal boundary",
			conditions: []Condition{
				{Field: "count", Operator: OperatorLessOrEqual, Value: 5},
			},
			logic:     LogicAnd,
			eventData: map[string]interface{}{"count": 5},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateConditions(tt.conditions, tt.logic, tt.eventData)
			if got != tt.want {
				t.Errorf("EvaluateConditions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateConditionsIsOrderIndependent(t *testing.T) {
	conditions := []Condition{
		{Field: "a", Operator: OperatorEquals, Value: 1},
		{Field: "b", Operator: OperatorEquals, Value: 2},
	}
	reversed := []Condition{conditions[1], conditions[0]}
	eventData := map[string]interface{}{"a": 1, "b": 2}

	if EvaluateConditions(conditions, LogicAnd, eventData) != EvaluateConditions(reversed, LogicAnd, eventData) {
		t.Error("evaluation should not depend on condition order")
	}
}
