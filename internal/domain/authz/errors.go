package authz

import "errors"

// ErrForbidden is returned when the requester is authenticated but not
// allowed to see or act on the target resource.
var ErrForbidden = errors.New("you are not allowed to access this resource")
