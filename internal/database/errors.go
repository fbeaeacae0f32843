package database

import (
	"context"
	"database/sql/driver"
	"errors"

	"github.com/lib/pq"
)

type ErrorClass int

const (
	ErrorClassPermanent ErrorClass = iota
	ErrorClassTransient
	ErrorClassDeadlock
	ErrorClassSerialization
	ErrorClassConstraint
	ErrorClassConnection
	ErrorClassCanceled
)

func (c ErrorClass) String() string {
	switch c {
	case ErrorClassTransient:
		return "transient"
	case ErrorClassDeadlock:
		return "deadlock"
	case ErrorClassSerialization:
		return "serialization"
	case ErrorClassConstraint:
		return "constraint"
	case ErrorClassConnection:
		return "connection"
	case ErrorClassCanceled:
		return "canceled"
	default:
		return "permanent"
	}
}

// ClassifyError buckets a storage error for logging.
func ClassifyError(err error) ErrorClass {
	if err == nil {
		return ErrorClassPermanent
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrorClassCanceled
	}

	if errors.Is(err, driver.ErrBadConn) {
		return ErrorClassConnection
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001":
			return ErrorClassSerialization
		case "40P01":
			return ErrorClassDeadlock
		case "55P03":
			return ErrorClassTransient
		case "23505", "23503", "23502", "23514", "22001":
			return ErrorClassConstraint
		}
		if pqErr.Code.Class() == "08" {
			return ErrorClassConnection
		}
	}

	return ErrorClassPermanent
}
