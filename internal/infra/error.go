package infra

import (
	"errors"
	"log/slog"

	"chargeway/internal/pkg/errs"
)

type UpstreamErrorKind string

// UpstreamError classifies failures talking to the charging platform so the
// usecase layer can map them without parsing response bodies twice.
type UpstreamError struct {
	Kind UpstreamErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

func WrapUpstreamErr(slogger *slog.Logger, kind UpstreamErrorKind, msg string, err error) error {
	if slogger != nil {
		slogger.Error("Upstream error: "+msg, slog.String("kind", string(kind)))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return UpstreamError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound        UpstreamErrorKind = "NOT_FOUND"
	KindUnauthorized    UpstreamErrorKind = "UNAUTHORIZED"
	KindConflict        UpstreamErrorKind = "CONFLICT"
	KindBadRequest      UpstreamErrorKind = "BAD_REQUEST"
	KindUpstreamFailure UpstreamErrorKind = "UPSTREAM_FAILURE"
	KindCacheFailure    UpstreamErrorKind = "CACHE_FAILURE"
)
