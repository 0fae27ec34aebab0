package store

import (
	"encoding/json"
	"fmt"
)

// Encode converts a typed record into the document form the store works with.
func Encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Decode converts a stored document back into a typed record.
func Decode[T any](doc map[string]any) (*T, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Merge applies partial onto doc, shallow: each top-level key in partial
// overwrites the corresponding key in the result. Nested objects are not
// merged recursively.
func Merge(doc, partial map[string]any) map[string]any {
	merged := make(map[string]any, len(doc)+len(partial))
	for k, v := range doc {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return merged
}

// Matches reports whether doc satisfies every field equality in filter.
// Values are compared by their string form, mirroring query-string filters.
func Matches(doc map[string]any, filter Filter) bool {
	for field, want := range filter {
		v, ok := doc[field]
		if !ok {
			return false
		}
		if stringify(v) != want {
			return false
		}
	}
	return true
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
