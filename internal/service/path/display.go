package path

import "strings"

const (
	verbatimPrefix    = `\\?\`
	verbatimUNCPrefix = `\\?\UNC\`
)

// CleanDisplayPath removes the Windows extended-length marker from p for display.
// `\\?\D:\x` becomes `D:\x` and `\\?\UNC\srv\share` becomes `\\srv\share`; anything else is
// returned unchanged. Markers are stripped until none is left, so the function is idempotent.
// The transform is textual and behaves the same on every host.
func CleanDisplayPath(p string) string {
	for {
		switch {
		case strings.HasPrefix(p, verbatimUNCPrefix):
			p = `\\` + p[len(verbatimUNCPrefix):]
		case strings.HasPrefix(p, verbatimPrefix):
			p = p[len(verbatimPrefix):]
		default:
			return p
		}
	}
}
