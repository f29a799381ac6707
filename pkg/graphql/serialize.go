package graphql

import (
	"fmt"
	"strconv"
	"strings"
)

// serializeFilterValue converts a filter value into its literal wire text.
// The second return reports whether the value produced output: a *Variable
// whose value is unset serializes to nothing, and the filter or list
// element referencing it is dropped.
func serializeFilterValue(value any) (string, bool, error) {
	switch typed := value.(type) {
	case *Variable:
		if typed.value == nil {
			return "", false, nil
		}

		return "$" + typed.key, true, nil
	case bool:
		return strconv.FormatBool(typed), true, nil
	case string:
		return strconv.Quote(typed), true, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", typed), true, nil
	case float32:
		return strconv.FormatFloat(float64(typed), 'g', -1, 32), true, nil
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64), true, nil
	case []any:
		return serializeFilterList(typed)
	case []string:
		return serializeFilterList(toAnySlice(typed))
	case []int:
		return serializeFilterList(toAnySlice(typed))
	case []float64:
		return serializeFilterList(toAnySlice(typed))
	case []bool:
		return serializeFilterList(toAnySlice(typed))
	default:
		return "", false, fmt.Errorf("%w: %T", ErrUnsupportedFilterType, value)
	}
}

// serializeFilterList renders "[e1, e2, ...]", skipping elements whose
// serialization was dropped.
func serializeFilterList(values []any) (string, bool, error) {
	parts := make([]string, 0, len(values))

	for _, item := range values {
		text, ok, err := serializeFilterValue(item)
		if err != nil {
			return "", false, err
		}

		if !ok {
			continue
		}

		parts = append(parts, text)
	}

	return "[" + strings.Join(parts, ", ") + "]", true, nil
}

func toAnySlice[T any](values []T) []any {
	items := make([]any, len(values))
	for i, value := range values {
		items[i] = value
	}

	return items
}
