package postgres

import (
	"database/sql/driver"
	"errors"
	"io"
	"net"
	"strings"
	"syscall"

	"tecno-eval-service/internal/domain"
	"github.com/uptrace/bun/driver/pgdriver"
)

// classifyWriteError maps a raw driver error onto the domain taxonomy so
// the retry loop can tell transient connection loss (retry) from
// constraint violations (never retry).
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		code := pgErr.Field('C')
		switch {
		case strings.HasPrefix(code, "23"): // integrity constraint violation
			return &domain.ConstraintError{Code: code, Err: err}
		case strings.HasPrefix(code, "08"): // connection exception
			return &domain.TransientError{Err: err}
		}
		return err
	}

	if isConnectionError(err) {
		return &domain.TransientError{Err: err}
	}
	return err
}

// isConnectionError reports whether err is a connection-level failure:
// the server never acknowledged a commit, so a retry is safe.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EPIPE) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
