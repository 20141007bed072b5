package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
)

// MaxGetOrCreateAttempts bounds the query/insert loop. Two attempts cover
// the uncontended path (miss, insert, hit); the third absorbs one lost race.
const MaxGetOrCreateAttempts = 3

var errNotVisible = errors.New("row not visible yet")

// getOrCreate queries with find and, on ErrNotFound, inserts and queries
// again. A unique violation from insert means another writer created the
// row first, so the next find is expected to see it.
func getOrCreate[T any](ctx context.Context, find func() (*T, error), insert func() error) (*T, error) {
	var found *T
	attempts := 0

	op := func() error {
		attempts++
		row, err := find()
		if err == nil {
			found = row
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return backoff.Permanent(err)
		}
		if err := insert(); err != nil && !isUniqueViolation(err) {
			return backoff.Permanent(err)
		}
		return errNotVisible
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(&backoff.ZeroBackOff{}, MaxGetOrCreateAttempts-1), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		if errors.Is(err, errNotVisible) {
			return nil, fmt.Errorf("%w (%d attempts)", ErrContention, attempts)
		}
		return nil, err
	}
	return found, nil
}
