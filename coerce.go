package strapi

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/Webbist-dev/strapi/pkg/schema"
)

// ErrUncoercibleValue is returned when an incoming value cannot be
// represented in the attribute's declared scalar kind.
var ErrUncoercibleValue = errors.New("value cannot be coerced to attribute type")

// coerceValue converts an incoming payload value to the canonical Go
// representation of a scalar kind: string for string-like kinds, int64
// for integer kinds, float64 for float kinds, bool for booleans. Nil
// passes through untouched. Coercion is also what makes the
// unchanged-value comparison meaningful: "3" and 3 are the same integer.
func coerceValue(kind schema.ScalarKind, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch kind {
	case schema.TypeString, schema.TypeText, schema.TypeUID, schema.TypeEmail, schema.TypeEnumeration:
		return coerceString(value)
	case schema.TypeInteger, schema.TypeBigInteger:
		return coerceInt(value)
	case schema.TypeFloat, schema.TypeDecimal:
		return coerceFloat(value)
	case schema.TypeBoolean:
		return coerceBool(value)
	default:
		return nil, fmt.Errorf("%w: unsupported kind %q", ErrUncoercibleValue, kind)
	}
}

func coerceString(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return nil, fmt.Errorf("%w: %T is not a string", ErrUncoercibleValue, value)
	}
}

func coerceInt(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows int64", ErrUncoercibleValue, v)
		}
		return int64(v), nil
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrUncoercibleValue, v)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%w: %T is not an integer", ErrUncoercibleValue, value)
	}
}

func floatToInt(v float64) (any, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, fmt.Errorf("%w: %v is not an integer", ErrUncoercibleValue, v)
	}
	return int64(v), nil
}

func coerceFloat(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrUncoercibleValue, v)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: %T is not a number", ErrUncoercibleValue, value)
	}
}

func coerceBool(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrUncoercibleValue, v)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %T is not a boolean", ErrUncoercibleValue, value)
	}
}

// valuesEqual reports whether two values represent the same logical
// value for a scalar kind. Both sides are coerced first; a value that
// cannot be coerced is never considered equal, which errs on the side of
// performing the uniqueness lookup.
func valuesEqual(kind schema.ScalarKind, a, b any) bool {
	ca, err := coerceValue(kind, a)
	if err != nil {
		return false
	}
	cb, err := coerceValue(kind, b)
	if err != nil {
		return false
	}
	return ca == cb
}
