package path

import (
	"path/filepath"
)

// Pair holds the two files handed to the diff viewer.
type Pair struct {
	Left  string
	Right string
}

// Resolver maps a user supplied file onto a left and a right root directory.
// Roots are used exactly as given: no cleaning, no conversion to absolute form.
type Resolver struct {
	leftRoot  string
	rightRoot string
}

// NewResolver creates a resolver for the given roots.
func NewResolver(leftRoot, rightRoot string) *Resolver {
	return &Resolver{
		leftRoot:  leftRoot,
		rightRoot: rightRoot,
	}
}

// LeftRoot returns the left root directory.
func (r *Resolver) LeftRoot() string { return r.leftRoot }

// RightRoot returns the right root directory.
func (r *Resolver) RightRoot() string { return r.rightRoot }

// Resolve computes the pair of files to compare for input.
//
// The right file is always Join(rightRoot, input). The left file is input itself
// when input already lies under leftRoot, otherwise Join(leftRoot, input).
// NOTE: the relative suffix found by TryRelativize only drives the decision. A path already
// under leftRoot keeps the caller's spelling instead of being rebuilt from the suffix.
func (r *Resolver) Resolve(input string) Pair {
	left := input
	if _, err := TryRelativize(input, r.leftRoot); err != nil {
		left = Join(r.leftRoot, input)
	}

	return Pair{
		Left:  left,
		Right: Join(r.rightRoot, input),
	}
}

// Join places p under root unless p already names its own location.
// An absolute p, or one carrying a volume name such as `D:`, replaces root and is returned as is.
// A p rooted without a volume (`\x` on Windows) keeps only root's volume.
// Otherwise the result is filepath.Join(root, p).
func Join(root, p string) string {
	if filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return p
	}
	if p != "" && isSeparator(rune(p[0])) {
		return filepath.VolumeName(root) + p
	}
	return filepath.Join(root, p)
}
