// Copyright (c) 2026 The rekey authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package rekey renames the property names of JSON documents.

A [Mapper] is built from rename rules written as dotted paths, for example
`FundInfList.PortCd` to `FundInfList.Fund`. Each rule renames the last
segment of its path in every object found at that path, stepping into every
element of arrays of objects on the way. Source and destination of a rule
must have the same depth, since only names change.

	mapper, err := rekey.New(map[string]string{
		"FundInfList":        "FundInfs",
		"FundInfList.PortCd": "FundInfList.Fund",
	})
	if err != nil {
		// Handle error here.
	}
	renamed, err := mapper.Rename([]byte(`{"FundInfList":[{"PortCd":"10000"}]}`))
	// renamed is {"FundInfs":[{"Fund":"10000"}]}

Rules are applied from the deepest path to the shallowest, so a rule can
still reach its property through parents that other rules rename.
Keys that no rule names, values and key order are kept as they are.

A Mapper is immutable and safe for concurrent use. [Reloadable] swaps
mappers when the rules from a [Watcher] change.
*/
package rekey
