package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTokenMock(t *testing.T) (*TokenRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewTokenRepo(db), mock
}

const selectToken = "SELECT user_id, expires_at, revoked_at FROM api_tokens WHERE token_hash = ?"

func TestValidateUnknownHashIsNotFound(t *testing.T) {
	repo, mock := newTokenMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectToken)).
		WithArgs("deadbeef").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.Validate(context.Background(), "deadbeef"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestValidateExpiredTokenIsNotFound(t *testing.T) {
	repo, mock := newTokenMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectToken)).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow("u1", time.Now().UTC().Add(-time.Hour), nil))

	if _, err := repo.Validate(context.Background(), "abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestValidateRevokedTokenIsNotFound(t *testing.T) {
	repo, mock := newTokenMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectToken)).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow("u1", time.Now().UTC().Add(time.Hour), time.Now().UTC().Add(-time.Minute)))

	if _, err := repo.Validate(context.Background(), "abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestValidateActiveTokenReturnsPrincipal(t *testing.T) {
	repo, mock := newTokenMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectToken)).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow("u1", time.Now().UTC().Add(time.Hour), nil))

	userID, err := repo.Validate(context.Background(), "abc")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != "u1" {
		t.Errorf("userID = %q, want u1", userID)
	}
}
