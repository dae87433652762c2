package media

import "errors"

var (
	ErrNotFound = errors.New("no media found")
	ErrNoFile   = errors.New("no file uploaded")
)
