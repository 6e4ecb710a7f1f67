package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	KindUnexpected Kind = iota
	KindDecode          // input missing, unreadable or not a valid image
	KindEncode          // result could not be encoded as PNG
	KindWrite           // output path not writable
)

// Sentinels for errors.Is; every *Error matches the one for its Kind.
var (
	ErrUnexpected = errors.New("unexpected error")
	ErrDecode     = errors.New("decode error")
	ErrEncode     = errors.New("encode error")
	ErrWrite      = errors.New("write error")
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	case KindWrite:
		return "write"
	default:
		return "unexpected"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindDecode:
		return ErrDecode
	case KindEncode:
		return ErrEncode
	case KindWrite:
		return ErrWrite
	default:
		return ErrUnexpected
	}
}

// Error is returned by Run and ProcessFile.
type Error struct {
	Kind Kind
	Path string // file involved, empty for in-memory runs
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
