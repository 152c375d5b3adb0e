package bindq

import (
	"errors"
	"fmt"
)

// ErrDuplicateBind matches any DuplicateBindError via errors.Is.
var ErrDuplicateBind = errors.New("duplicate bind name")

// DuplicateBindError reports an explicit Bind whose name is already taken.
type DuplicateBindError struct {
	Name string
}

func (e DuplicateBindError) Error() string {
	return fmt.Sprintf("%s: %q", ErrDuplicateBind, e.Name)
}

// Is reports whether target is ErrDuplicateBind.
func (e DuplicateBindError) Is(target error) bool {
	return target == ErrDuplicateBind
}
