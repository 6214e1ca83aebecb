package infra

import (
	"errors"
	"log/slog"

	"storefront-engine/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	Key  string
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	prefix := string(e.Kind)
	if e.Key != "" {
		prefix += " [" + e.Key + "]"
	}
	if e.err != nil {
		return prefix + ": " + e.msg + ": " + e.err.Error()
	}
	return prefix + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, key, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("key", key),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	// a missing key is the normal first-run state
	if kind == KindNotFound {
		slogger.Debug("Repository error: "+msg, logArgs...)
	} else {
		slogger.Error("Repository error: "+msg, logArgs...)
	}

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
	KindNotFound      RepositoryErrorKind = "NOT_FOUND"
	KindIOFailure     RepositoryErrorKind = "IO_FAILURE"
	KindDecodeFailure RepositoryErrorKind = "DECODE_FAILURE"
	KindEncodeFailure RepositoryErrorKind = "ENCODE_FAILURE"
)
