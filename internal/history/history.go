// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history resolves commit hashes and hash ranges into raw commit
// messages.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultToHash is the range end used when none is given.
const DefaultToHash = "HEAD"

// ErrNotAncestor is returned when the start of a range is not reachable
// from its end.
var ErrNotAncestor = errors.New("from-hash is not an ancestor of to-hash")

// Source provides raw commit messages. Implementations must never return an
// empty result for an unknown hash.
type Source interface {
	// CommitMessage returns the message of a single commit.
	CommitMessage(ctx context.Context, hash string) (string, error)

	// CommitMessages returns the messages of every commit between from and
	// to, both inclusive, oldest first. from == to yields no messages.
	CommitMessages(ctx context.Context, from, to string) ([]string, error)
}

// ResolutionError reports a failed lookup of one or more revisions.
type ResolutionError struct {
	Hashes []string
	Err    error
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unable to resolve %s", strings.Join(e.Hashes, ".."))
	}
	return fmt.Sprintf("unable to resolve %s: %v", strings.Join(e.Hashes, ".."), e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
