package compiler

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Configuration keys the compiler reads from a container node's payload.
// Everything else in the payload passes through to the executor untouched.
const (
	keyLoopType         = "loopType"
	keyIterations       = "iterations"
	keyCollection       = "collection"
	keyWhileCondition   = "whileCondition"
	keyDoWhileCondition = "doWhileCondition"
	keyParallelType     = "parallelType"
	keyCount            = "count"
)

// configString reads a string-valued configuration field, returning "" when
// the field is absent or not a string.
func configString(config map[string]any, key string) string {
	if value, ok := config[key].(string); ok {
		return value
	}
	return ""
}

// configInt reads a numeric configuration field, tolerating the
// representations that survive JSON and YAML round-trips. Anything
// unreadable falls back to the default.
func configInt(config map[string]any, key string, fallback int) int {
	switch value := config[key].(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	case json.Number:
		if n, err := value.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	}
	return fallback
}

// parseCollection normalizes a forEach collection value. A string that looks
// like a JSON literal (leading "[" or "{") is parsed; if parsing fails the
// original string is kept as-is, since it is presumed to be an expression the
// executor evaluates at runtime. Any other value passes through unchanged.
func parseCollection(raw any) any {
	value, ok := raw.(string)
	if !ok {
		if raw == nil {
			return ""
		}
		return raw
	}

	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		var parsed any
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			return parsed
		}
	}
	return value
}
