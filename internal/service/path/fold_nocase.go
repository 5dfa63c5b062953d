//go:build darwin || windows

package path

import "strings"

// CaseInsensitive reports whether component comparison ignores case on this host.
const CaseInsensitive = true

func sameComponent(a, b string) bool {
	return strings.EqualFold(a, b)
}
