package squareerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrLogic indicates an input failed validation.
	ErrLogic = errors.New("logic")

	// ErrInvalidArgument indicates an input is not a multiple of the divisor.
	ErrInvalidArgument = fmt.Errorf("invalid argument: %w", ErrLogic)

	// ErrOutOfRange indicates an input falls outside the accepted range.
	ErrOutOfRange = fmt.Errorf("out of range: %w", ErrLogic)

	// ErrFile indicates an error occurred while accessing a file.
	ErrFile = errors.New("file")

	// ErrFileOpen indicates a file could not be opened or created.
	ErrFileOpen = fmt.Errorf("open: %w", ErrFile)

	// ErrFileRead indicates a file's content could not be read.
	ErrFileRead = fmt.Errorf("read: %w", ErrFile)

	// ErrFileWrite indicates a file could not be written.
	ErrFileWrite = fmt.Errorf("write: %w", ErrFile)
)

var (
	_ error = (*InvalidArgumentError)(nil)
	_ error = (*OutOfRangeError)(nil)
	_ error = (*FileOpenError)(nil)
	_ error = (*FileReadError)(nil)
	_ error = (*FileWriteError)(nil)
)

// InvalidArgumentError is returned when an argument is not a multiple of 5.
type InvalidArgumentError struct {
	Argument int
}

// NewInvalidArgumentError returns an [InvalidArgumentError] for argument.
func NewInvalidArgumentError(argument int) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("Argument %d must be a multiple of 5", e.Argument)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return errors.Is(ErrInvalidArgument, target)
}

// OutOfRangeError is returned when an argument falls outside the inclusive
// range [Start, End].
type OutOfRangeError struct {
	Argument int
	Start    int
	End      int
}

// NewOutOfRangeError returns an [OutOfRangeError] for argument and the
// inclusive range [start, end].
func NewOutOfRangeError(argument, start, end int) *OutOfRangeError {
	return &OutOfRangeError{Argument: argument, Start: start, End: end}
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("Argument %d doesn't fall in the range [%d, %d]", e.Argument, e.Start, e.End)
}

func (e *OutOfRangeError) Is(target error) bool {
	return errors.Is(ErrOutOfRange, target)
}

// FileOpenError is returned when a file cannot be opened for reading or
// created for writing. Err holds the underlying cause, if any.
type FileOpenError struct {
	Err      error
	FileName string
}

// NewFileOpenError returns a [FileOpenError] for fileName caused by err.
func NewFileOpenError(fileName string, err error) *FileOpenError {
	return &FileOpenError{FileName: fileName, Err: err}
}

func (e *FileOpenError) Error() string {
	return "Unable to open " + e.FileName
}

func (e *FileOpenError) Is(target error) bool {
	return errors.Is(ErrFileOpen, target)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// FileReadError is returned when a file's content cannot be read or parsed.
// Line is 1-based.
type FileReadError struct {
	Err      error
	FileName string
	Line     int
}

// NewFileReadError returns a [FileReadError] for fileName at line, caused
// by err.
func NewFileReadError(fileName string, line int, err error) *FileReadError {
	return &FileReadError{FileName: fileName, Line: line, Err: err}
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("Error reading %s at line %d", e.FileName, e.Line)
}

func (e *FileReadError) Is(target error) bool {
	return errors.Is(ErrFileRead, target)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// FileWriteError is returned when writing to an open file fails.
type FileWriteError struct {
	Err      error
	FileName string
}

// NewFileWriteError returns a [FileWriteError] for fileName caused by err.
func NewFileWriteError(fileName string, err error) *FileWriteError {
	return &FileWriteError{FileName: fileName, Err: err}
}

func (e *FileWriteError) Error() string {
	return "Unable to write " + e.FileName
}

func (e *FileWriteError) Is(target error) bool {
	return errors.Is(ErrFileWrite, target)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}
