package access

import (
	"errors"
	"fmt"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
)

// Kind classifies why access to a path could not be established
type Kind int

const (
	KindTokenMissing Kind = iota
	KindTokenStale
	KindRestoreFailed
	KindUserDeclined
)

var (
	ErrTokenMissing              = errors.New("no access token for path")
	ErrTokenStale                = errors.New("access token is stale and could not be recreated")
	ErrRestoreFailed             = errors.New("failed to restore access")
	ErrUserDeclinedAuthorization = errors.New("user declined authorization")
)

func (k Kind) String() string {
	switch k {
	case KindTokenMissing:
		return "token-missing"
	case KindTokenStale:
		return "token-stale"
	case KindRestoreFailed:
		return "restore-failed"
	case KindUserDeclined:
		return "user-declined"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindTokenMissing:
		return ErrTokenMissing
	case KindTokenStale:
		return ErrTokenStale
	case KindUserDeclined:
		return ErrUserDeclinedAuthorization
	default:
		return ErrRestoreFailed
	}
}

// Error is returned by every failing Store operation. It matches
// domain.ErrAccessDenied and the sentinel of its Kind with errors.Is.
type Error struct {
	Err  error
	Kind Kind
	Path string
}

func newError(path string, kind Kind, err error) *Error {
	return &Error{Err: err, Kind: kind, Path: path}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind.sentinel())
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind.sentinel(), e.Err)
}

func (e *Error) Unwrap() []error {
	errs := []error{e.Kind.sentinel(), domain.ErrAccessDenied}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
