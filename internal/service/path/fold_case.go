//go:build !darwin && !windows

package path

// CaseInsensitive reports whether component comparison ignores case on this host.
const CaseInsensitive = false

func sameComponent(a, b string) bool {
	return a == b
}
