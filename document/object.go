// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package document

import "slices"

// Member is a key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object that keeps its members in document order.
//
// The zero value is an empty object ready to use.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject creates an Object holding the given members in order.
// A repeated key keeps its first position and its last value.
func NewObject(members ...Member) *Object {
	object := &Object{}
	for _, member := range members {
		object.Set(member.Key, member.Value)
	}

	return object
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.members)
}

// Keys returns the member keys in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	keys := make([]string, 0, len(o.members))
	for _, member := range o.members {
		keys = append(keys, member.Key)
	}

	return keys
}

// Get returns the value under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}

	i, ok := o.index[key]
	if !ok {
		return nil, false
	}

	return o.members[i].Value, true
}

// Set replaces the value under key, or appends a new member if key is absent.
func (o *Object) Set(key string, value any) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = value

		return
	}

	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: value})
}

// Delete removes the member under key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}

	i, ok := o.index[key]
	if !ok {
		return false
	}
	o.members = slices.Delete(o.members, i, i+1)
	o.reindex(i)

	return true
}

// Rename changes the key of the member under from to to, keeping its position.
// A member already under to is dropped in favor of the renamed member.
// It reports whether a member under from was present.
func (o *Object) Rename(from, to string) bool {
	if _, ok := o.Get(from); !ok {
		return false
	}
	o.RenameAll(map[string]string{from: to})

	return true
}

// RenameAll renames every key found in renames at once, keeping positions,
// so renames like {"a": "b", "b": "a"} swap the two keys.
// If a new key collides with a key that is not renamed, the renamed member wins.
// If several renamed members collide, the last one in order wins.
// It returns how many keys have been changed.
func (o *Object) RenameAll(renames map[string]string) int {
	if o == nil || len(renames) == 0 {
		return 0
	}

	keys := make([]string, len(o.members))
	renamed := make([]bool, len(o.members))
	owners := make(map[string]int, len(o.members))
	count := 0
	for i, member := range o.members {
		key := member.Key
		if to, ok := renames[key]; ok && to != key {
			key = to
			renamed[i] = true
			count++
		}
		keys[i] = key

		if j, ok := owners[key]; !ok || renamed[i] || !renamed[j] {
			owners[key] = i
		}
	}
	if count == 0 {
		return 0
	}

	members := make([]Member, 0, len(o.members))
	for i, member := range o.members {
		if owners[keys[i]] != i {
			continue
		}
		members = append(members, Member{Key: keys[i], Value: member.Value})
	}
	o.members = members
	clear(o.index)
	o.reindex(0)

	return count
}

// Range calls fn for each member in order until fn returns false.
func (o *Object) Range(fn func(key string, value any) bool) {
	if o == nil {
		return
	}

	for _, member := range o.members {
		if !fn(member.Key, member.Value) {
			return
		}
	}
}

// Members returns a copy of the members in order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}

	return slices.Clone(o.members)
}

func (o *Object) reindex(from int) {
	for i := from; i < len(o.members); i++ {
		o.index[o.members[i].Key] = i
	}
	for key, i := range o.index {
		if i >= len(o.members) || o.members[i].Key != key {
			delete(o.index, key)
		}
	}
}
