package session

import "errors"

// ErrInvalidSession covers unknown and expired tokens alike; callers get a
// single 401 either way.
var ErrInvalidSession = errors.New("invalid session")
