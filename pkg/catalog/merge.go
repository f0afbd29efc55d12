package catalog

// MergeByName unions the bundled local catalog with remote records,
// deduplicating on the case-insensitive name. The local definition
// always wins wholesale over a remote record with the same name; field
// level enrichment from remote rows is deliberately not performed.
//
// Ordering is stable: local entries first in their original order, then
// remote-only entries in the order the remote returned them. Duplicate
// names inside the remote input keep only the first occurrence.
func MergeByName(local, remote []Exercise) []Exercise {
	merged := make([]Exercise, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local)+len(remote))

	for _, ex := range local {
		if _, dup := seen[ex.Key()]; dup {
			continue
		}
		seen[ex.Key()] = struct{}{}
		merged = append(merged, ex)
	}

	for _, ex := range remote {
		if _, dup := seen[ex.Key()]; dup {
			continue
		}
		seen[ex.Key()] = struct{}{}
		merged = append(merged, ex)
	}

	return merged
}
