package infra

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"flat-reservation/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	level := slog.LevelError
	if kind == KindNotFound {
		level = slog.LevelDebug
	}
	slogger.Log(context.Background(), level, "Repository error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// NotFound wraps the domain NotFoundError so callers can match either the
// repository kind or errs.ErrNotFound.
func NotFound(slogger *slog.Logger, kind errs.EntityKind, id fmt.Stringer) error {
	return WrapRepoErr(slogger, KindNotFound, string(kind)+" lookup failed", errs.NewNotFound(kind, id))
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindInvalidInput RepositoryErrorKind = "INVALID_INPUT"
	KindPublish      RepositoryErrorKind = "PUBLISH_FAILURE"
)
