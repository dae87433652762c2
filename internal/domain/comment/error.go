package comment

import "errors"

var (
	ErrNotFound     = errors.New("comment not found")
	ErrNotAuthor    = errors.New("not the comment author")
	ErrEmptyMessage = errors.New("message is required")
)
