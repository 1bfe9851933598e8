package decoder

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a decode failure.
type Kind uint8

const (
	KindUnknown Kind = iota
	MalformedHeader
	UnsupportedEncoding
	UnsupportedDepth
	TruncatedFile
	IoFailure
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	MalformedHeader:     "malformed header",
	UnsupportedEncoding: "unsupported encoding",
	UnsupportedDepth:    "unsupported depth",
	TruncatedFile:       "truncated file",
	IoFailure:           "i/o failure",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Sentinels for errors.Is. A *Error matches the sentinel of its Kind.
var (
	ErrMalformedHeader     = &Error{Kind: MalformedHeader}
	ErrUnsupportedEncoding = &Error{Kind: UnsupportedEncoding}
	ErrUnsupportedDepth    = &Error{Kind: UnsupportedDepth}
	ErrTruncatedFile       = &Error{Kind: TruncatedFile}
	ErrIoFailure           = &Error{Kind: IoFailure}
)

// Error is returned for every failed decode.
type Error struct {
	Kind Kind
	Path string // empty when decoding from a reader
	Err  error
}

func (e *Error) Error() string {
	msg := "tga: " + e.Kind.String()
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: errors.Errorf(format, args...)}
}
