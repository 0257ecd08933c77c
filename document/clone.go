// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package document

// Clone returns a deep copy of the containers in value.
// Scalars are shared since renaming never changes them.
func Clone(value any) any {
	switch value := value.(type) {
	case *Object:
		if value == nil {
			return value
		}
		object := &Object{
			members: make([]Member, len(value.members)),
			index:   make(map[string]int, len(value.index)),
		}
		for i, member := range value.members {
			object.members[i] = Member{Key: member.Key, Value: Clone(member.Value)}
			object.index[member.Key] = i
		}

		return object
	case map[string]any:
		if value == nil {
			return value
		}
		values := make(map[string]any, len(value))
		for key, v := range value {
			values[key] = Clone(v)
		}

		return values
	case []map[string]any:
		if value == nil {
			return value
		}
		values := make([]map[string]any, len(value))
		for i, v := range value {
			values[i], _ = Clone(v).(map[string]any)
		}

		return values
	case []any:
		if value == nil {
			return value
		}
		values := make([]any, len(value))
		for i, v := range value {
			values[i] = Clone(v)
		}

		return values
	default:
		return value
	}
}
