package utils

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

// Diff computes the minimal delta between two structured records: the fields
// of desired whose values differ from current. Both values are flattened
// through their JSON encoding, so struct tags (including omitempty) decide
// which fields of desired are considered at all. The comparison is shallow:
// only top-level keys of desired are inspected, nested values compare by deep
// equality of their decoded form.
func Diff(current, desired any) (map[string]any, error) {
	currentFields, err := toMap(current)
	if err != nil {
		return nil, errors.Wrap(err, "[Diff] current")
	}
	desiredFields, err := toMap(desired)
	if err != nil {
		return nil, errors.Wrap(err, "[Diff] desired")
	}

	delta := make(map[string]any)
	for key, want := range desiredFields {
		if have, ok := currentFields[key]; ok && reflect.DeepEqual(have, want) {
			continue
		}
		delta[key] = want
	}
	return delta, nil
}

func toMap(v any) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]any)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
