package dto

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

// CastFunc converts a raw input value into a target type. Registered
// casters are looked up by the name used in `cast:"..."` tags, or by the
// Go type string (e.g. "money.Amount") for fields without a tag.
type CastFunc func(value any) any

// casterRegistry is the package-level, goroutine-safe caster store.
var casterRegistry struct {
	mu      sync.RWMutex
	casters map[string]CastFunc
}

func init() {
	casterRegistry.casters = make(map[string]CastFunc)
}

// RegisterCaster adds a named caster to the global registry, replacing any
// existing caster under the same name. Safe for concurrent use.
//
//	dto.RegisterCaster("money.Amount", func(v any) any {
//	    return money.Parse(fmt.Sprint(v))
//	})
func RegisterCaster(name string, fn CastFunc) {
	casterRegistry.mu.Lock()
	defer casterRegistry.mu.Unlock()
	casterRegistry.casters[name] = fn
}

// HasCaster reports whether a caster is registered under name.
func HasCaster(name string) bool {
	casterRegistry.mu.RLock()
	defer casterRegistry.mu.RUnlock()
	_, ok := casterRegistry.casters[name]
	return ok
}

// FlushCasters removes all registered casters.
// Intended for use in tests.
func FlushCasters() {
	casterRegistry.mu.Lock()
	defer casterRegistry.mu.Unlock()
	casterRegistry.casters = make(map[string]CastFunc)
}

func lookupCaster(name string) (CastFunc, bool) {
	casterRegistry.mu.RLock()
	defer casterRegistry.mu.RUnlock()
	fn, ok := casterRegistry.casters[name]
	return fn, ok
}

// Cast coerces value into the named type.
//
// nil passes through untouched. The built-in names are the scalar targets
// (int/integer, float/double/number, string, bool/boolean, object); any
// other name resolves against the caster registry. Unknown names return the
// value unchanged; casting never fails on a name it does not recognize.
func Cast(value any, typeName string) any {
	if value == nil {
		return nil
	}
	switch typeName {
	case "", "mixed":
		return value
	case "int", "integer":
		return toInt(value)
	case "string":
		return toString(value)
	case "float", "double", "number":
		return toFloat(value)
	case "bool", "boolean":
		return toBool(value)
	case "object":
		return toMap(value)
	default:
		if fn, ok := lookupCaster(typeName); ok {
			return fn(value)
		}
		return value
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Scalar coercions
// ─────────────────────────────────────────────────────────────────────────────

func toInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
		return 0
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

func toFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	default:
		return 0
	}
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes", "on":
			return true
		default:
			return false
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return toInt(v) != 0
	case float32, float64:
		return toFloat(v) != 0
	default:
		return value != nil
	}
}

// toMap renders value as a map[string]any, round-tripping structs through
// encoding/json when needed.
func toMap(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return v
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return value
		}
		out := make(map[string]any)
		if err := json.Unmarshal(b, &out); err != nil {
			return value
		}
		return out
	}
}

// timeLayouts are tried in order when casting a string into a time.Time.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case int:
		return time.Unix(int64(v), 0), true
	case int64:
		return time.Unix(v, 0), true
	case float64:
		return time.Unix(int64(v), 0), true
	default:
		return time.Time{}, false
	}
}

// wrapList normalizes a value into a []any: slices and arrays are copied
// element-wise, everything else becomes a single-element list. nil yields
// an empty list.
func wrapList(value any) []any {
	if value == nil {
		return []any{}
	}
	switch v := value.(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			out := make([]any, rv.Len())
			for i := range out {
				out[i] = rv.Index(i).Interface()
			}
			return out
		}
		return []any{value}
	}
}
