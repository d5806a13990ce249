package lidio

import (
	"fmt"
	"slices"

	"lidio-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
)

func checkEnum(field string, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return exceptions.ErrFieldNotAllowed(field, value, allowed)
	}
	return nil
}

func asString(field string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", exceptions.ErrInvalidFieldType(field, "string", value)
	}
}

func asBool(field string, value any) (bool, error) {
	v, ok := value.(bool)
	if !ok {
		return false, exceptions.ErrInvalidFieldType(field, "bool", value)
	}
	return v, nil
}

func asMap(field string, value any) (map[string]any, error) {
	switch v := value.(type) {
	case map[string]any:
		return v, nil
	case map[string]string:
		converted := make(map[string]any, len(v))
		for key, item := range v {
			converted[key] = item
		}
		return converted, nil
	default:
		return nil, exceptions.ErrInvalidFieldType(field, "object", value)
	}
}

func asStringSlice(field string, value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		converted := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, exceptions.ErrInvalidFieldType(field, "list of strings", value)
			}
			converted = append(converted, s)
		}
		return converted, nil
	default:
		return nil, exceptions.ErrInvalidFieldType(field, "list of strings", value)
	}
}

func asMapSlice(field string, value any) ([]map[string]any, error) {
	switch v := value.(type) {
	case []map[string]any:
		return v, nil
	case []any:
		converted := make([]map[string]any, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, exceptions.ErrInvalidFieldType(field, "list of objects", value)
			}
			converted = append(converted, m)
		}
		return converted, nil
	default:
		return nil, exceptions.ErrInvalidFieldType(field, "list of objects", value)
	}
}

// toDecimal accepts Go numbers, numeric strings and json.Number.
func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case Amount:
		return v.Decimal(), true
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case uint:
		return decimal.NewFromInt(int64(v)), true
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	case fmt.Stringer:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

// cloneValue deep copies the maps and slices produced by JSON decoding and by the builders.
func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		cloned := make(map[string]any, len(v))
		for key, item := range v {
			cloned[key] = cloneValue(item)
		}
		return cloned
	case []any:
		cloned := make([]any, len(v))
		for i, item := range v {
			cloned[i] = cloneValue(item)
		}
		return cloned
	case []map[string]any:
		cloned := make([]map[string]any, len(v))
		for i, item := range v {
			cloned[i] = cloneValue(item).(map[string]any)
		}
		return cloned
	case []string:
		return slices.Clone(v)
	default:
		return v
	}
}

func mergeOptions(defaults, overrides map[string]any) map[string]any {
	for key, value := range overrides {
		defaults[key] = cloneValue(value)
	}
	return defaults
}
