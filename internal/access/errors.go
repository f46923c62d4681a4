// Package access decides, for every read or write of an inventory or thing,
// whether the acting user may see or modify it, which fields are exposed or
// settable, and what counts as valid input. Operations check existence first,
// then ownership, then input validity; callers rely on that order to pick the
// right failure for a request that is wrong in more than one way.
package access

import "errors"

// The complete failure contract of this package. Operations wrap these
// sentinels with fmt.Errorf("...: %w", ...) so callers classify with
// errors.Is while the message keeps the details. Anything else that comes
// out of an operation is an unclassified storage failure.
var (
	// ErrNotFound: the referenced user, inventory, or thing does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermission: the resource exists but belongs to another user.
	ErrPermission = errors.New("permission denied")

	// ErrInvalidData: malformed input, a missing required field, or a
	// storage constraint violation.
	ErrInvalidData = errors.New("invalid data")
)
