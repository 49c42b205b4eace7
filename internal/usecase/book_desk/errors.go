package book_desk

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument возвращается, когда обязательный аргумент не передан
var ErrInvalidArgument = errors.New("book_desk: invalid argument")

// ArgumentError указывает на отсутствующий параметр
type ArgumentError struct {
	Param string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s must not be nil", ErrInvalidArgument, e.Param)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
