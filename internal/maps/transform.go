// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

import "slices"

// Rename renames keys by renames in every object reached by path from value.
// It returns how many keys have been renamed.
func Rename(value any, path []string, renames map[string]string, strict bool) (int, error) {
	if len(renames) == 0 {
		return 0, nil
	}

	objects, err := Reach(value, path, strict)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, object := range objects {
		count += object.RenameAll(renames)
	}

	return count, nil
}

// plain adapts a map[string]any, which has no key order, to Container.
type plain map[string]any

func (p plain) Get(key string) (any, bool) {
	value, ok := p[key]

	return value, ok
}

// RenameAll moves the values out before writing them back so swapped names
// do not overwrite each other. Renamed keys colliding on the same name are
// resolved by the source key order, the last one wins.
func (p plain) RenameAll(renames map[string]string) int {
	var froms []string
	for from, to := range renames {
		if _, ok := p[from]; ok && from != to {
			froms = append(froms, from)
		}
	}
	slices.Sort(froms)

	values := make([]any, len(froms))
	for i, from := range froms {
		values[i] = p[from]
		delete(p, from)
	}
	for i, from := range froms {
		p[renames[from]] = values[i]
	}

	return len(froms)
}
