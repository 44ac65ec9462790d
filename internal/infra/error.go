package infra

import (
	"errors"
	"log/slog"

	"storefront-cart/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	Key  string
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

// Is maps kinds onto the shared sentinels so callers outside infra can match them.
func (e RepositoryError) Is(target error) bool {
	switch target {
	case errs.ErrStorageOperationFailed:
		return e.Kind == KindStorageFailure
	case errs.ErrSnapshotUnreadable:
		return e.Kind == KindDecodeFailure
	}
	return false
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, key, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("key", key),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, Key: key, msg: msg, err: err}
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
	KindNotFound       RepositoryErrorKind = "NOT_FOUND"
	KindStorageFailure RepositoryErrorKind = "STORAGE_FAILURE"
	KindDecodeFailure  RepositoryErrorKind = "DECODE_FAILURE"
)
