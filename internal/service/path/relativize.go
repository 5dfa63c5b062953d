package path

import (
	"path/filepath"
	"strings"
)

// TryRelativize returns the part of absolutePath that follows root, compared component by component.
// It fails with a *NotUnderRootError unless absolutePath begins with every component of root, in order.
// Component equality honours CaseInsensitive. A path equal to root yields "".
func TryRelativize(absolutePath, root string) (string, error) {
	rootParts := components(root)
	if len(rootParts) == 0 {
		return absolutePath, nil
	}

	pathParts := components(absolutePath)
	if len(rootParts) > len(pathParts) {
		return "", &NotUnderRootError{Path: absolutePath, Root: root}
	}
	for i, part := range rootParts {
		if !sameComponent(pathParts[i], part) {
			return "", &NotUnderRootError{Path: absolutePath, Root: root}
		}
	}

	return joinComponents(pathParts[len(rootParts):]), nil
}

// components splits p into its volume name, a separator marking an absolute path, and its named
// elements. Repeated separators, trailing separators and "." elements carry no component.
// ".." is kept as an ordinary element: nothing is resolved lexically.
func components(p string) []string {
	vol := filepath.VolumeName(p)
	rest := p[len(vol):]

	var parts []string
	if vol != "" {
		parts = append(parts, vol)
	}
	if rest != "" && isSeparator(rune(rest[0])) {
		parts = append(parts, string(filepath.Separator))
	}
	for _, elem := range strings.FieldsFunc(rest, isSeparator) {
		if elem == "." {
			continue
		}
		parts = append(parts, elem)
	}
	return parts
}

func joinComponents(parts []string) string {
	var b strings.Builder
	for i, part := range parts {
		if i > 0 && !strings.HasSuffix(b.String(), string(filepath.Separator)) {
			b.WriteRune(filepath.Separator)
		}
		b.WriteString(part)
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r == '/' || r == filepath.Separator
}
