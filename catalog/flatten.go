package catalog

import (
	"fmt"
	"sort"
)

// Flatten converts a decoded document tree into a KeySpace.
// Nested objects contribute their keys joined with "." below prefix; only string leaves are
// kept, numbers, booleans, nulls and arrays are skipped.
func Flatten(tree interface{}, prefix string) KeySpace {
	out := make(KeySpace)
	FlattenInto(out, tree, prefix)
	return out
}

// FlattenInto adds the string leaves of tree to out and returns the sorted paths that tree
// defines more than once, such as a literal "a.b" key next to a nested "a" object holding "b".
// Children are visited in key order, so the later key in that order wins.
func FlattenInto(out KeySpace, tree interface{}, prefix string) []string {
	written := make(map[string]int)
	flattenNode(out, written, tree, prefix)

	var duplicates []string
	for key, n := range written {
		if n > 1 {
			duplicates = append(duplicates, key)
		}
	}
	sort.Strings(duplicates)
	return duplicates
}

func flattenNode(out KeySpace, written map[string]int, tree interface{}, prefix string) {
	switch node := tree.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(node))
		for key := range node {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			flattenNode(out, written, node[key], joinKey(prefix, key))
		}
	case map[interface{}]interface{}:
		// yaml documents may carry non-string mapping keys
		children := make(map[string]interface{}, len(node))
		keys := make([]string, 0, len(node))
		for key, child := range node {
			name := fmt.Sprint(key)
			if _, dup := children[name]; dup {
				// 1 and "1" render the same; keep one of them deterministically
				if _, ok := key.(string); !ok {
					continue
				}
			} else {
				keys = append(keys, name)
			}
			children[name] = child
		}
		sort.Strings(keys)
		for _, name := range keys {
			flattenNode(out, written, children[name], joinKey(prefix, name))
		}
	case string:
		out[prefix] = node
		written[prefix]++
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
