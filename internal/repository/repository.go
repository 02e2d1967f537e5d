// Package repository owns all query composition: every read and write is
// scoped to the authenticated owner, batch operations run in a single
// transaction with all-or-nothing semantics, and backend constraint
// violations are translated into domain errors.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	apperrors "github.com/swoleapp/swole-api/internal/errors"
)

const uniqueViolation = pq.ErrorCode("23505")

// repository carries the shared database handle and transaction helper.
type repository struct {
	db *sql.DB
}

// withTx runs fn inside a transaction acquired for the duration of the call.
// Any error from fn rolls back the whole transaction, so a failing element of
// a batch never leaves partial writes behind.
func (r repository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// translateUnique maps a unique-constraint violation to the given domain
// error and passes every other error through unchanged.
func translateUnique(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return apperrors.NewBusinessError(message)
	}
	return err
}

// hasDuplicateIDs reports whether the same id appears twice in a batch.
func hasDuplicateIDs(ids []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
