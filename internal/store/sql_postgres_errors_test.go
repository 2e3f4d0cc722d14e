package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected ErrorClassification
	}{
		{"connection exception", pgerrcode.ConnectionException, Retryable},
		{"connection does not exist", pgerrcode.ConnectionDoesNotExist, Retryable},
		{"connection failure", pgerrcode.ConnectionFailure, Retryable},
		{"transaction rollback", pgerrcode.TransactionRollback, Retryable},
		{"serialization failure", pgerrcode.SerializationFailure, Retryable},
		{"deadlock detected", pgerrcode.DeadlockDetected, Retryable},
		{"cannot connect now", pgerrcode.CannotConnectNow, Retryable},
		{"unique violation", pgerrcode.UniqueViolation, NonRetryable},
		{"foreign key violation", pgerrcode.ForeignKeyViolation, NonRetryable},
		{"syntax error", pgerrcode.SyntaxError, NonRetryable},
		{"undefined table", pgerrcode.UndefinedTable, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPgError(&pgconn.PgError{Code: tt.code})
			if got != tt.expected {
				t.Errorf("code %s: expected %v, got %v", tt.code, tt.expected, got)
			}
		})
	}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	if got := classifier.Classify(nil); got != NonRetryable {
		t.Errorf("nil error: expected NonRetryable, got %v", got)
	}

	if got := classifier.Classify(errors.New("plain error")); got != NonRetryable {
		t.Errorf("non-driver error: expected NonRetryable, got %v", got)
	}

	wrapped := fmt.Errorf("%w: %w", ErrExecutingStatement, pgError(pgerrcode.DeadlockDetected))
	if got := classifier.Classify(wrapped); got != Retryable {
		t.Errorf("wrapped deadlock: expected Retryable, got %v", got)
	}
}

func TestDB_Retryable(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	if !db.retryable(pgError(pgerrcode.ConnectionFailure)) {
		t.Error("expected connection failure to be retryable")
	}
	if db.retryable(pgError(pgerrcode.UniqueViolation)) {
		t.Error("expected unique violation to be non-retryable")
	}
	if db.retryable(errors.New("plain error")) {
		t.Error("expected non-driver error to be non-retryable")
	}
}
