package paths

import (
	"strings"

	"github.com/arthur-debert/dot/pkg/errors"
)

// ValidateEntryName checks that name can be used as a file name directly
// under the storage directory.
func ValidateEntryName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "entry name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.New(errors.ErrInvalidInput, "entry name cannot contain path separators").
			WithDetail("name", name)
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrInvalidInput, "entry name cannot be '.' or '..'")
	}

	for _, r := range name {
		if r < 32 || r == 127 {
			return errors.New(errors.ErrInvalidInput, "entry name contains control characters").
				WithDetail("name", name)
		}
	}

	return nil
}

// ValidatePath checks that a user supplied path is usable.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	return nil
}
