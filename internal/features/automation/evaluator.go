package automation

import (
	"fmt"
	"reflect"
	"strings"
)

// EvaluateConditions checks a condition list against incoming event data.
// An empty list matches unconditionally. AND logic requires every condition
// to hold, OR logic at least one. Pure; no side effects.
func EvaluateConditions(conditions []Condition, logic ConditionLogic, eventData map[string]interface{}) bool {
	if len(conditions) == 0 {
		return true
	}

	matched := 0
	for _, cond := range conditions {
		if evaluateCondition(cond, eventData) {
			matched++
		}
	}

	if logic == LogicOr {
		return matched > 0
	}
	return matched == len(conditions)
}

func evaluateCondition(cond Condition, eventData map[string]interface{}) bool {
	value, exists := eventData[cond.Field]

	switch cond.Operator {
	case OperatorEquals:
		return exists && strictEqual(value, cond.Value)
	case OperatorNotEquals:
		// An absent field is never equal to anything.
		return !exists || !strictEqual(value, cond.Value)
	case OperatorContains:
		return exists && strings.Contains(stringify(value), stringify(cond.Value))
	case OperatorStartsWith:
		return exists && strings.HasPrefix(stringify(value), stringify(cond.Value))
	case OperatorEndsWith:
		return exists && strings.HasSuffix(stringify(value), stringify(cond.Value))
	case OperatorGreaterThan:
		cmp, ok := compareValues(value, cond.Value)
		return exists && ok && cmp > 0
	case OperatorLessThan:
		cmp, ok := compareValues(value, cond.Value)
		return exists && ok && cmp < 0
	case OperatorGreaterOrEqual:
		cmp, ok := compareValues(value, cond.Value)
		return exists && ok && cmp >= 0
	case OperatorLessOrEqual:
		cmp, ok := compareValues(value, cond.Value)
		return exists && ok && cmp <= 0
	default:
		// Unknown operators fail closed.
		return false
	}
}

// strictEqual is type-sensitive equality. Numeric kinds are normalized before
// comparison so that a JSON-decoded float64 matches an int of the same value;
// a number never equals its string representation.
func strictEqual(a, b interface{}) bool {
	na, aNum := toFloat(a)
	nb, bNum := toFloat(b)
	if aNum || bNum {
		return aNum && bNum && na == nb
	}
	return reflect.DeepEqual(a, b)
}

// compareValues orders two values: numerically when both are numbers,
// lexically when both are strings. Mixed types do not compare.
func compareValues(a, b interface{}) (int, bool) {
	if na, ok := toFloat(a); ok {
		nb, ok := toFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case na < nb:
			return -1, true
		case na > nb:
			return 1, true
		default:
			return 0, true
		}
	}

	sa, aOK := a.(string)
	sb, bOK := b.(string)
	if aOK && bOK {
		return strings.Compare(sa, sb), true
	}
	return 0, false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func stringify(v interface{}) string {
	return fmt.Sprintf("%v", v)
}
