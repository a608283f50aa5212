package board

import (
	"errors"
	"fmt"
)

// ErrLookup is the root of every "referenced id does not exist" failure.
var ErrLookup = errors.New("lookup failed")

// ErrInvalid is the root of every malformed-payload failure.
var ErrInvalid = errors.New("invalid mutation")

var (
	ErrGroupNotFound      = fmt.Errorf("group not found: %w", ErrLookup)
	ErrTaskNotFound       = fmt.Errorf("task not found: %w", ErrLookup)
	ErrLabelNotFound      = fmt.Errorf("label not found: %w", ErrLookup)
	ErrMemberNotFound     = fmt.Errorf("member not found: %w", ErrLookup)
	ErrTodoListNotFound   = fmt.Errorf("todo list not found: %w", ErrLookup)
	ErrTodoNotFound       = fmt.Errorf("todo not found: %w", ErrLookup)
	ErrAttachmentNotFound = fmt.Errorf("attachment not found: %w", ErrLookup)
	ErrIndexOutOfRange    = fmt.Errorf("index out of range: %w", ErrLookup)

	ErrNoBoard      = fmt.Errorf("no current board: %w", ErrInvalid)
	ErrInvalidColor = fmt.Errorf("unsupported color value: %w", ErrInvalid)
	ErrInvalidSort  = fmt.Errorf("unsupported sort order: %w", ErrInvalid)
	ErrInvalidWatch = fmt.Errorf("unsupported watch target: %w", ErrInvalid)
)

func notFound(err error, id string) error {
	return fmt.Errorf("%w: %s", err, id)
}
