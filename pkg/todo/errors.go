package todo

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every IndexError.
var ErrIndexOutOfRange = errors.New("todo: index out of range")

// Kind names the level of the hierarchy an index refers to.
type Kind string

const (
	KindGroup   Kind = "group"
	KindTask    Kind = "task"
	KindSubTask Kind = "subtask"
)

// IndexError reports an index that does not address an existing item.
type IndexError struct {
	Kind  Kind
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("todo: %s index %d out of range (have %d)", e.Kind, e.Index, e.Len)
}

// Is lets errors.Is(err, ErrIndexOutOfRange) match.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func checkIndex(kind Kind, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Kind: kind, Index: i, Len: n}
	}
	return nil
}

// checkInsert allows the one-past-the-end position.
func checkInsert(kind Kind, i, n int) error {
	if i < 0 || i > n {
		return &IndexError{Kind: kind, Index: i, Len: n}
	}
	return nil
}
