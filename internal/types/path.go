package types

import "strings"

// KeyPathSeparator separates segments of a key path written as a single
// string, e.g. "electric-end-use/space-heating".
const KeyPathSeparator = "/"

// KeyPath is an ordered descent route through a row or column tree.
type KeyPath []string

// Key returns the one-element path for a bare key.
func Key(key string) KeyPath {
	return KeyPath{key}
}

// ParseKeyPath splits a separator-joined path. Blank segments are dropped
// so "a//b/" and "a/b" are the same path.
func ParseKeyPath(value string) KeyPath {
	var path KeyPath
	for _, part := range strings.Split(value, KeyPathSeparator) {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		path = append(path, trimmed)
	}
	return path
}

func (p KeyPath) String() string {
	return strings.Join(p, KeyPathSeparator)
}
