// Package chainmapper provides a logger.ErrorMapper that renders the whole
// cause chain of an error instead of its top-level message.
//
// The chain follows Station-Manager DetailedError causes first and falls
// back to errors.Unwrap, so both error styles render as
//
//	startup failed -> failed to connect to database -> connection refused
package chainmapper

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"github.com/Station-Manager/logger"
	"github.com/Station-Manager/logger/fields"
)

const (
	maxDepth  = 50
	separator = " -> "
)

// Link is a single error of a chain.
type Link struct {
	Msg string
	Op  string
}

// Chain walks err's cause chain, outermost first. It guards against
// excessive depth and repeated messages.
func Chain(err error) []Link {
	var chain []Link

	seen := map[string]bool{}

	for visited := 0; err != nil && visited < maxDepth; visited++ {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, Link{Msg: dErr.Error(), Op: string(dErr.Op())})
			err = dErr.Cause()

			continue
		}

		msg := logger.ErrorString(err)
		if seen[msg] {
			break
		}

		seen[msg] = true
		chain = append(chain, Link{Msg: msg})
		err = stderrs.Unwrap(err)
	}

	return chain
}

// History joins the chain messages with " -> ".
func History(chain []Link) string {
	msgs := make([]string, len(chain))
	for i, l := range chain {
		msgs[i] = l.Msg
	}

	return strings.Join(msgs, separator)
}

// Map renders the error history under logger.ErrorKey. Use it with
// logger.WithErrorMapper.
func Map(err error) fields.Field {
	return fields.F(logger.ErrorKey, History(Chain(err)))
}

// RootOp returns the operation of the innermost DetailedError of the chain,
// or an empty string.
func RootOp(chain []Link) string {
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Op != "" {
			return chain[i].Op
		}
	}

	return ""
}
