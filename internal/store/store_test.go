package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	if !IsUniqueViolation(dup) {
		t.Error("unique violation not recognized")
	}
	if !IsUniqueViolation(fmt.Errorf("create patient: %w", dup)) {
		t.Error("wrapped unique violation not recognized")
	}

	// anything else must not be mistaken for a duplicate; those errors
	// surface as server failures, not domain answers
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation misclassified")
	}
	if IsUniqueViolation(errors.New("connection refused")) {
		t.Error("plain error misclassified")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil misclassified")
	}
}
