package core

import (
	"fmt"
	"strconv"
)

// Stringify converts an arbitrary value to its display string. It is
// the single conversion point for field values: nil becomes "null",
// strings pass through unchanged, numeric and boolean values use their
// canonical strconv form, and anything else falls back to its %v
// representation. Stringify never panics; a value whose String or Error
// method panics yields "[unprintable]".
func Stringify(value any) (s string) {
	defer func() {
		if recover() != nil {
			s = "[unprintable]"
		}
	}()

	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}
