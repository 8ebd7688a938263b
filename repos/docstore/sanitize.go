package docstore

import "reflect"

// Sanitize normalizes a payload before it is written. The store accepts null
// but rejects values it cannot represent, so typed nil pointers become plain
// nil and nested maps are cleaned key by key.
func Sanitize(payload map[string]interface{}) map[string]interface{} {
	clean := make(map[string]interface{}, len(payload))
	for field, value := range payload {
		clean[field] = sanitizeValue(value)
	}
	return clean
}

func sanitizeValue(value interface{}) interface{} {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case map[string]interface{}:
		return Sanitize(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = sanitizeValue(item)
		}
		return out
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		return sanitizeValue(rv.Elem().Interface())
	}

	return value
}
